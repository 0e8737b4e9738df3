package sequence

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func assertCommands(t *testing.T, e *Engine, prev, next, finish bool) {
	t.Helper()
	if got := e.Enabled(Previous); got != prev {
		t.Errorf("expected Previous enabled=%v, got %v", prev, got)
	}
	if got := e.Enabled(Next); got != next {
		t.Errorf("expected Next enabled=%v, got %v", next, got)
	}
	if got := e.Enabled(Finish); got != finish {
		t.Errorf("expected Finish enabled=%v, got %v", finish, got)
	}
}

func assertCurrent(t *testing.T, e *Engine, want tea.Model) {
	t.Helper()
	if e.Current() != want {
		t.Fatalf("expected current view %v, got %v", want.View(), e.Current().View())
	}
}

func TestEngine_LinearSequence(t *testing.T) {
	// Arrange
	a, b, c := named("A"), named("B"), named("C")
	host := &dialogHost{}

	// Act & Assert
	e := New(host, NewLinear(a, b, c))
	assertCurrent(t, e, a)
	assertCommands(t, e, false, true, false)
	if e.State() != AtStep {
		t.Errorf("expected state %s, got %s", AtStep, e.State())
	}

	if !e.GoNext() {
		t.Fatal("expected GoNext to move from A")
	}
	assertCurrent(t, e, b)

	if !e.GoPrevious() {
		t.Fatal("expected GoPrevious to move from B")
	}
	assertCurrent(t, e, a)

	e.GoNext()
	assertCurrent(t, e, b)
	e.GoNext()
	assertCurrent(t, e, c)
	assertCommands(t, e, true, false, true)
	if e.Default() != Finish {
		t.Errorf("expected default command Finish, got %s", e.Default())
	}

	if e.GoNext() {
		t.Error("expected GoNext at the last view to be a no-op")
	}
	assertCurrent(t, e, c)

	if !e.GoFinish() {
		t.Fatal("expected GoFinish to succeed at the last view")
	}
	if !host.closed || host.result != ResultOK {
		t.Errorf("expected host closed with OK, got closed=%v result=%s", host.closed, host.result)
	}
	if e.State() != Finished {
		t.Errorf("expected state %s, got %s", Finished, e.State())
	}
	assertCommands(t, e, false, false, false)
}

func TestEngine_VerificationGatesNext(t *testing.T) {
	// Arrange
	a := &verifiableView{plainView: plainView{name: "A"}}
	b := named("B")
	e := New(&SlotHost{}, NewLinear(a, b))

	// Act
	moved := e.GoNext()

	// Assert
	if moved {
		t.Error("expected GoNext to be refused while A does not verify")
	}
	assertCurrent(t, e, a)
	assertCommands(t, e, false, true, false)

	a.accept = true
	if !e.GoNext() {
		t.Fatal("expected the same GoNext call to advance once A verifies")
	}
	assertCurrent(t, e, b)
	if a.calls != 2 {
		t.Errorf("expected Verify to run twice, ran %d times", a.calls)
	}
}

func TestEngine_PreviousSkipsVerification(t *testing.T) {
	// Arrange
	a := named("A")
	b := &verifiableView{plainView: plainView{name: "B"}, accept: true}
	e := New(&SlotHost{}, NewLinear(a, b))
	e.GoNext()
	b.accept = false

	// Act
	moved := e.GoPrevious()

	// Assert
	if !moved {
		t.Fatal("expected GoPrevious to move even though B refuses verification")
	}
	assertCurrent(t, e, a)
	if b.calls != 1 {
		t.Errorf("expected Verify to run only for the forward move, ran %d times", b.calls)
	}
}

func TestEngine_Finish(t *testing.T) {
	t.Run("refused while the last view does not verify", func(t *testing.T) {
		last := &verifiableView{plainView: plainView{name: "last"}}
		host := &dialogHost{}
		e := New(host, NewLinear(last))

		if e.GoFinish() {
			t.Error("expected GoFinish to be refused")
		}
		if host.closed {
			t.Error("expected host to stay open")
		}
		if e.State() != AtStep {
			t.Errorf("expected state %s, got %s", AtStep, e.State())
		}
	})

	t.Run("ignored while more steps remain", func(t *testing.T) {
		host := &dialogHost{}
		e := New(host, NewLinear(named("A"), named("B")))

		if e.GoFinish() {
			t.Error("expected GoFinish to be a no-op before the last step")
		}
		if host.closed {
			t.Error("expected host to stay open")
		}
	})

	t.Run("works without a dialog host", func(t *testing.T) {
		e := New(&SlotHost{}, NewLinear(named("only")))

		if !e.GoFinish() {
			t.Fatal("expected GoFinish to succeed")
		}
		if e.State() != Finished {
			t.Errorf("expected state %s, got %s", Finished, e.State())
		}
	})

	t.Run("every move is a no-op once finished", func(t *testing.T) {
		host := &dialogHost{}
		e := New(host, NewLinear(named("only")))
		e.GoFinish()
		host.closed = false

		if e.GoFinish() || e.GoNext() || e.GoPrevious() {
			t.Error("expected no move after finishing")
		}
		if host.closed {
			t.Error("expected the host not to be closed twice")
		}
	})

	t.Run("Start revives a finished sequence", func(t *testing.T) {
		a := named("A")
		e := New(&SlotHost{}, NewLinear(a))
		e.GoFinish()

		e.Start()

		if e.State() != AtStep {
			t.Errorf("expected state %s, got %s", AtStep, e.State())
		}
		assertCurrent(t, e, a)
		assertCommands(t, e, false, false, true)
	})
}

func TestEngine_Invoke(t *testing.T) {
	testCases := []struct {
		name          string
		id            CommandID
		expectedMoved bool
		expectedName  string
	}{
		{name: "Next is enabled at the start", id: Next, expectedMoved: true, expectedName: "B"},
		{name: "Previous is disabled at the start", id: Previous, expectedMoved: false, expectedName: "A"},
		{name: "Finish is disabled at the start", id: Finish, expectedMoved: false, expectedName: "A"},
		{name: "Unknown commands are ignored", id: CommandID(42), expectedMoved: false, expectedName: "A"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			e := New(&SlotHost{}, NewLinear(named("A"), named("B")))

			// Act
			moved := e.Invoke(tc.id)

			// Assert
			if moved != tc.expectedMoved {
				t.Errorf("expected moved=%v, got %v", tc.expectedMoved, moved)
			}
			if got := e.Current().View(); got != tc.expectedName {
				t.Errorf("expected current view %s, got %s", tc.expectedName, got)
			}
		})
	}
}

func TestEngine_DefaultTracksNextThenFinish(t *testing.T) {
	e := New(&SlotHost{}, NewLinear(named("A"), named("B")))

	if e.Default() != Next {
		t.Errorf("expected default Next, got %s", e.Default())
	}

	e.GoNext()

	if e.Default() != Finish {
		t.Errorf("expected default Finish, got %s", e.Default())
	}
}

func TestEngine_NestedTransitionIsIgnored(t *testing.T) {
	// Arrange
	a := &verifiableView{plainView: plainView{name: "A"}, accept: true}
	b, c := named("B"), named("C")
	e := New(&SlotHost{}, NewLinear(a, b, c))

	var nestedMoved bool
	a.onVerify = func() { nestedMoved = e.GoNext() }

	// Act
	moved := e.GoNext()

	// Assert
	if !moved {
		t.Fatal("expected the outer GoNext to move")
	}
	if nestedMoved {
		t.Error("expected the nested GoNext to be ignored")
	}
	assertCurrent(t, e, b)
}

func TestEngine_OnChange(t *testing.T) {
	e := New(&SlotHost{}, NewLinear(named("A"), named("B")))
	calls := 0
	e.OnChange(func() { calls++ })

	e.GoNext()
	e.GoNext()

	if calls != 2 {
		t.Errorf("expected 2 change notifications, got %d", calls)
	}
}

func TestEngine_Commands(t *testing.T) {
	e := New(&SlotHost{}, NewLinear(named("A"), named("B")))

	cmds := e.Commands()

	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	expected := []Command{
		{ID: Previous, Enabled: false},
		{ID: Next, Enabled: true},
		{ID: Finish, Enabled: false},
	}
	for i, cmd := range cmds {
		if cmd != expected[i] {
			t.Errorf("command %d: expected %+v, got %+v", i, expected[i], cmd)
		}
	}

	cmds[1].Enabled = false
	if !e.Enabled(Next) {
		t.Error("expected Commands to return a copy")
	}
}

func TestEngine_Misconfiguration(t *testing.T) {
	t.Run("nil host", func(t *testing.T) {
		expectPanic(t, func() { New(nil, NewLinear(named("A"))) })
	})

	t.Run("nil source", func(t *testing.T) {
		expectPanic(t, func() { New(&SlotHost{}, nil) })
	})

	t.Run("source without first view", func(t *testing.T) {
		source := &Static{FirstFunc: func() tea.Model { return nil }}
		expectPanic(t, func() { New(&SlotHost{}, source) })
	})
}

func TestCommandID_String(t *testing.T) {
	testCases := map[CommandID]string{
		Previous:      "Previous",
		Next:          "Next",
		Finish:        "Finish",
		CommandID(-1): "Unknown",
	}
	for id, expected := range testCases {
		if got := id.String(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}
}
