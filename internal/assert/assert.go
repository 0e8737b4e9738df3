package assert

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// Panics with the given msg if the given condition is false
func True(condition bool, msg string) {
	if !condition {
		fail(msg)
	}
}

// Panics with the given msg if the given condition is true
func False(condition bool, msg string) {
	if condition {
		fail(msg)
	}
}

// Panics with the given msg if item is nil or a nil pointer, func, map or
// slice hidden behind an interface.
func NotNil(item any, msg string) {
	if isNil(item) {
		fail(msg)
	}
}

// Panics with the given msg + error message + stack trace if the given error
// is not nil
func NoError(err error, msg string) {
	if err != nil {
		fail(fmt.Sprintf("%s: %v (type: %T)", msg, err, err))
	}
}

// Panics with the given msg
func Fail(msg string) {
	fail(msg)
}

// Panics with a formatted msg
func Failf(format string, args ...any) {
	fail(fmt.Sprintf(format, args...))
}

func isNil(item any) bool {
	if item == nil {
		return true
	}

	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func fail(msg string) {
	errMsg := fmt.Sprintf("Assertion failed: %s\n", msg)
	errMsg += string(debug.Stack())
	panic(errMsg)
}
