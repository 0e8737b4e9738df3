package assert

import (
	"fmt"
	"strings"
	"testing"
)

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic, but function did not panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("expected a string panic value, got %T", r)
		}
		if !strings.Contains(msg, contains) {
			t.Fatalf("Unexpected panic message: got %v", msg)
		}
	}()

	fn()
}

func TestTrue(t *testing.T) {
	True(true, "This should not panic")
	expectPanic(t, "This should panic", func() { True(false, "This should panic") })
}

func TestFalse(t *testing.T) {
	False(false, "This should not panic")
	expectPanic(t, "This should panic", func() { False(true, "This should panic") })
}

func TestNotNil(t *testing.T) {
	var nilPtr *int
	var nilFunc func()
	var nilMap map[string]int

	testCases := []struct {
		name        string
		item        any
		shouldPanic bool
	}{
		{name: "string", item: "something", shouldPanic: false},
		{name: "zero int", item: 0, shouldPanic: false},
		{name: "untyped nil", item: nil, shouldPanic: true},
		{name: "nil pointer", item: nilPtr, shouldPanic: true},
		{name: "nil func", item: nilFunc, shouldPanic: true},
		{name: "nil map", item: nilMap, shouldPanic: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				expectPanic(t, "must not be nil", func() { NotNil(tc.item, "must not be nil") })
				return
			}
			NotNil(tc.item, "must not be nil")
		})
	}
}

func TestNoError(t *testing.T) {
	NoError(nil, "This should not panic")
	expectPanic(
		t,
		"an error occurred (type: *errors.errorString)\n",
		func() { NoError(fmt.Errorf("an error occurred"), "This should panic") },
	)
}

func TestFail(t *testing.T) {
	expectPanic(t, "This should always panic", func() { Fail("This should always panic") })
}

func TestFailf(t *testing.T) {
	expectPanic(t, `unknown strategy "zigzag"`, func() {
		Failf("unknown strategy %q", "zigzag")
	})
}
