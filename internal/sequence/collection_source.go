package sequence

import (
	"log"

	"seqwizard/internal/assert"
	"seqwizard/internal/collection"

	tea "github.com/charmbracelet/bubbletea"
)

// Collection is an ordered, observable data source of step items.
// *collection.List satisfies it.
type Collection interface {
	Len() int
	At(i int) any
	Subscribe(listener collection.Listener) (unsubscribe func())
}

// Mapper turns a collection item into the view that presents it. It must
// return the same view for the same item.
type Mapper func(item any) tea.Model

// CollectionSource is a Source backed by a Collection and a cursor into it.
//
// Mutations of the collection only cause command recomputation; the cursor
// and the displayed view are left alone, even when the item on display was
// removed.
type CollectionSource struct {
	mapper      Mapper
	placeholder tea.Model
	items       Collection
	unsubscribe func()
	cursor      int
	notify      func(Event)
}

// NewCollectionSource returns a source with no collection bound. placeholder
// is shown when the bound collection is empty or absent.
func NewCollectionSource(mapper Mapper, placeholder tea.Model) *CollectionSource {
	assert.NotNil(mapper, "sequence: collection source needs a mapper")
	assert.NotNil(placeholder, "sequence: collection source needs a placeholder view")

	return &CollectionSource{
		mapper:      mapper,
		placeholder: placeholder,
	}
}

// Bind switches the source to items, which may be an untyped nil. If an engine is
// attached, the sequence restarts from the first view.
func (s *CollectionSource) Bind(items Collection) {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}

	s.items = items
	s.cursor = 0
	if items != nil {
		s.unsubscribe = items.Subscribe(collectionListener{s})
	}

	log.Printf("sequence: collection source rebound, len=%d", s.size())
	s.emit(EventRebound)
}

func (s *CollectionSource) Notify(fn func(Event)) {
	s.notify = fn
}

// Cursor is the index of the item currently on display.
func (s *CollectionSource) Cursor() int {
	return s.cursor
}

func (s *CollectionSource) First() tea.Model {
	s.cursor = 0
	if s.size() == 0 {
		return s.placeholder
	}
	return s.viewAt(0)
}

func (s *CollectionSource) HasNext(tea.Model) bool {
	return s.cursor < s.size()-1
}

func (s *CollectionSource) Next(tea.Model) tea.Model {
	s.cursor++
	return s.viewAt(s.cursor)
}

// HasPrevious also reports false when a removal left nothing at cursor-1.
func (s *CollectionSource) HasPrevious(tea.Model) bool {
	return s.cursor > 0 && s.cursor <= s.size()
}

func (s *CollectionSource) Previous(tea.Model) tea.Model {
	s.cursor--
	return s.viewAt(s.cursor)
}

// Path maps every item from the start up to the cursor. After a removal the
// cursor may point past the end; the path then stops at the last item.
func (s *CollectionSource) Path(tea.Model) []tea.Model {
	last := min(s.cursor, s.size()-1)

	var out []tea.Model
	for i := 0; i <= last; i++ {
		out = append(out, s.viewAt(i))
	}
	return out
}

func (s *CollectionSource) size() int {
	if s.items == nil {
		return 0
	}
	return s.items.Len()
}

func (s *CollectionSource) viewAt(i int) tea.Model {
	view := s.mapper(s.items.At(i))
	if view == nil {
		assert.Failf("sequence: mapper produced no view for index %d", i)
	}
	return view
}

func (s *CollectionSource) emit(ev Event) {
	if s.notify != nil {
		s.notify(ev)
	}
}

type collectionListener struct {
	source *CollectionSource
}

func (l collectionListener) ElementsInserted(lo, hi int) {
	log.Printf("sequence: elements inserted [%d,%d]", lo, hi)
	l.source.emit(EventMutated)
}

func (l collectionListener) ElementsRemoved(lo, hi int) {
	log.Printf("sequence: elements removed [%d,%d]", lo, hi)
	l.source.emit(EventMutated)
}

func (l collectionListener) ElementsChanged(lo, hi int) {
	log.Printf("sequence: elements changed [%d,%d]", lo, hi)
	l.source.emit(EventMutated)
}
