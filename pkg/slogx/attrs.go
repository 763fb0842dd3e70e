package slogx

import (
	"log/slog"
)

const (
	// KeyLoggerName is the attribute key carrying the logger name.
	KeyLoggerName = "logger"
	// KeyChannel is the attribute key carrying a channel name.
	KeyChannel = "channel"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// LoggerName creates a slog.Attr with the provided logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// Channel groups the identifying attributes of a channel. Channels that are
// not registered under a name (such as a bus default channel) only carry their id.
func Channel(name, id string) slog.Attr {
	if name == "" {
		return slog.Group(KeyChannel, slog.String("id", id))
	}
	return slog.Group(KeyChannel, slog.String("name", name), slog.String("id", id))
}

// Event returns the attribute for an event or reply item name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
