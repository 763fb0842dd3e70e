/*
Package radio provides an in-process event bus organized into named channels.

Components talk to each other through channels they look up by name instead of
holding references to one another: one side listens on a channel, the other
triggers events on it, and a Registry resolves both names to the same Channel.
Each channel also keeps a small request/reply store for values that are asked
for rather than broadcast.

# Basic Usage

	bus := radio.New()

	hub := bus.Channel("hub")
	hub.On("ping", radio.Func(func(e radio.Event) {
		fmt.Println("got", e.Arg(0))
	}))

	bus.TriggerChannel("hub", "ping", 42)

Several events can be named at once, separated by whitespace, or registered
from an ordered Batch:

	hub.On("open close", onChange)
	hub.OnBatch(radio.NewBatch[*radio.Callback]().Set("open", onOpen).Set("close", onClose))

# Listening to other channels

A channel that subscribes to another one through ListenTo is recorded as the
owner of that subscription. StopListening later removes everything the channel
registered elsewhere in one call, which is what a component does when it goes
away:

	ui := bus.Channel("ui")
	ui.ListenTo("hub", "ping", onPing)
	...
	ui.StopListening("", "", nil).Reset()

SetScope does the same automatically when a context.Context is done.

# Requests

	config := bus.Channel("config")
	config.Reply("timeout", 30*time.Second)
	config.Reply("greeting", radio.ReplyFunc(func(r radio.Request) any {
		return "hello " + r.Arg(0).(string)
	}))

	timeout, _ := radio.RequestAs[time.Duration](config, "timeout")

Requests for items without a reply fall back to the DefaultReply item and
return nil when that is missing too.

# Errors

Nothing in this package returns an error. Calls with an empty event name, a nil
callback or a nil reply value do nothing, and every mutating method returns its
receiver so calls can be chained.
*/
package radio
