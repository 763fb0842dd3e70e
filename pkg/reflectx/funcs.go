package reflectx

import (
	"reflect"
	"runtime"
	"strings"
)

// IsFunction reports whether fn holds a non-nil function value.
func IsFunction(fn any) bool {
	if fn == nil {
		return false
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && !v.IsNil()
}

// IsNilFunction reports whether fn holds a function type whose value is nil,
// such as a nil func stored in an interface.
func IsNilFunction(fn any) bool {
	if fn == nil {
		return false
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && v.IsNil()
}

// FunctionName returns a short, human readable name for fn, or an empty string
// when fn is not a function. Named function types report their type name,
// everything else reports the runtime symbol without its package path, so a
// closure declared in main shows up as "main.func1".
func FunctionName(fn any) string {
	if !IsFunction(fn) {
		return ""
	}

	val := reflect.ValueOf(fn)
	if typ := val.Type(); typ.Name() != "" {
		return typ.String()
	}

	rf := runtime.FuncForPC(val.Pointer())
	if rf == nil {
		return val.Type().String()
	}
	name := rf.Name()
	if slash := strings.LastIndex(name, "/"); slash >= 0 {
		name = name[slash+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
