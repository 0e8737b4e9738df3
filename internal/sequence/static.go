package sequence

import (
	"seqwizard/internal/assert"

	tea "github.com/charmbracelet/bubbletea"
)

// Static is a Source whose behaviour is supplied directly as functions, for
// hand-authored sequences. Nil Has* funcs report false; FirstFunc is
// required. Without a PathFunc the path is just the current view.
type Static struct {
	FirstFunc       func() tea.Model
	HasNextFunc     func(current tea.Model) bool
	NextFunc        func(current tea.Model) tea.Model
	HasPreviousFunc func(current tea.Model) bool
	PreviousFunc    func(current tea.Model) tea.Model
	PathFunc        func(current tea.Model) []tea.Model
}

func (s *Static) First() tea.Model {
	assert.NotNil(s.FirstFunc, "sequence: static source has no FirstFunc")
	return s.FirstFunc()
}

func (s *Static) HasNext(current tea.Model) bool {
	if s.HasNextFunc == nil {
		return false
	}
	return s.HasNextFunc(current)
}

func (s *Static) Next(current tea.Model) tea.Model {
	if s.NextFunc == nil {
		return nil
	}
	return s.NextFunc(current)
}

func (s *Static) HasPrevious(current tea.Model) bool {
	if s.HasPreviousFunc == nil {
		return false
	}
	return s.HasPreviousFunc(current)
}

func (s *Static) Previous(current tea.Model) tea.Model {
	if s.PreviousFunc == nil {
		return nil
	}
	return s.PreviousFunc(current)
}

func (s *Static) Path(current tea.Model) []tea.Model {
	if s.PathFunc == nil {
		if current == nil {
			return nil
		}
		return []tea.Model{current}
	}
	return s.PathFunc(current)
}

// NewLinear returns a Static source stepping through views in order.
func NewLinear(views ...tea.Model) *Static {
	assert.True(len(views) > 0, "sequence: linear source needs at least one view")
	for _, v := range views {
		assert.NotNil(v, "sequence: linear source given a nil view")
	}

	pos := 0
	return &Static{
		FirstFunc: func() tea.Model {
			pos = 0
			return views[pos]
		},
		HasNextFunc: func(tea.Model) bool {
			return pos < len(views)-1
		},
		NextFunc: func(tea.Model) tea.Model {
			pos++
			return views[pos]
		},
		HasPreviousFunc: func(tea.Model) bool {
			return pos > 0
		},
		PreviousFunc: func(tea.Model) tea.Model {
			pos--
			return views[pos]
		},
		PathFunc: func(tea.Model) []tea.Model {
			return append([]tea.Model(nil), views[:pos+1]...)
		},
	}
}
