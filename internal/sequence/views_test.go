package sequence

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// plainView is a step view with no optional capabilities.
type plainView struct {
	name string
}

func (v *plainView) Init() tea.Cmd                       { return nil }
func (v *plainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *plainView) View() string                        { return v.name }

// verifiableView accepts or refuses forward moves depending on accept.
type verifiableView struct {
	plainView
	accept   bool
	calls    int
	onVerify func()
}

func (v *verifiableView) Verify() bool {
	v.calls++
	if v.onVerify != nil {
		v.onVerify()
	}
	return v.accept
}

// chainView names its own successor.
type chainView struct {
	plainView
	hasNext   bool
	next      any
	nextCalls int
}

func (v *chainView) HasNext() bool { return v.hasNext }

func (v *chainView) Next() any {
	v.nextCalls++
	return v.next
}

// dialogHost records how it was closed.
type dialogHost struct {
	SlotHost
	closed bool
	result Result
}

func (h *dialogHost) Close(result Result) {
	h.closed = true
	h.result = result
}

func named(name string) *plainView {
	return &plainView{name: name}
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic, but the call returned normally")
		}
	}()
	fn()
}

func assertPath(t *testing.T, got []tea.Model, expected ...tea.Model) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected a path of %d views, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("path[%d]: expected %s, got %s", i, expected[i].View(), got[i].View())
		}
	}
}
