package config

import (
	"log"

	"seqwizard/internal/assert"
	"seqwizard/internal/collection"
	"seqwizard/internal/constants"
	"seqwizard/internal/sequence"
	"seqwizard/internal/steps"

	tea "github.com/charmbracelet/bubbletea"
)

// Wizard is a definition turned into live step views and the source that
// sequences them.
type Wizard struct {
	Title    string
	Buttons  string
	Strategy Strategy
	Source   sequence.Source

	// Steps backs the collection strategy. Mutating it changes the sequence
	// while the wizard runs. Nil for other strategies.
	Steps *collection.List

	views map[string]tea.Model
	order []string
}

// View returns the step view with the given id.
func (w *Wizard) View(id string) (tea.Model, bool) {
	v, ok := w.views[id]
	return v, ok
}

// Answers returns what the user entered on the steps passed on the way to
// current, in the order they were reached. Steps the sequence skipped or has
// not reached yet are left out.
func (w *Wizard) Answers(current tea.Model) []steps.Answer {
	p, ok := w.Source.(sequence.Pather)
	if !ok {
		return nil
	}

	var out []steps.Answer
	for _, v := range p.Path(current) {
		if a, ok := v.(steps.Answerer); ok {
			out = append(out, a.Answer())
		}
	}
	return out
}

// Build creates the views for a validated definition. Passing a definition
// that did not come out of Parse, or Validate, is a programming error.
func Build(def Definition) *Wizard {
	assert.NoError(def.Validate(), "config: building an invalid definition")

	strategy, err := ParseStrategy(def.Strategy)
	assert.NoError(err, "config: unknown strategy")

	w := &Wizard{
		Title:    def.Title,
		Buttons:  def.Buttons,
		Strategy: strategy,
		views:    make(map[string]tea.Model, len(def.Steps)),
	}

	for _, s := range def.Steps {
		w.views[s.ID] = w.newView(s)
		w.order = append(w.order, s.ID)
	}

	switch strategy {
	case StrategyLinear:
		w.Source = w.linear()
	case StrategyCollection:
		w.Source = w.collection(def)
	case StrategyChain:
		w.Source = w.chain()
	default:
		assert.Failf("config: unhandled strategy %q", strategy)
	}

	log.Printf("config: built %q with %s strategy", def.Title, strategy)
	return w
}

func (w *Wizard) newView(s StepDef) tea.Model {
	switch s.Kind {
	case "", KindInput:
		return steps.NewInput(steps.InputOptions{
			ID:          s.ID,
			Title:       s.Title,
			Prompt:      s.Prompt,
			Placeholder: s.Placeholder,
			Required:    s.Required,
			Next:        s.Next,
		})

	case KindChoice:
		options := make([]steps.Option, len(s.Options))
		for i, o := range s.Options {
			options[i] = steps.Option{Label: o.Label, Description: o.Description, Next: o.Next}
		}
		return steps.NewChoice(steps.ChoiceOptions{
			ID:      s.ID,
			Title:   s.Title,
			Prompt:  s.Prompt,
			Options: options,
			Next:    s.Next,
		})

	case KindSummary:
		// The summary is only rendered while it is the current step.
		var summary *steps.Summary
		summary = steps.NewSummary(steps.SummaryOptions{
			ID:     s.ID,
			Title:  s.Title,
			Prompt: s.Prompt,
			Answers: func() []steps.Answer {
				return w.Answers(summary)
			},
			QRCode: s.QRCode,
		})
		return summary
	}

	assert.Failf("config: unknown step kind %q", s.Kind)
	return nil
}

func (w *Wizard) linear() sequence.Source {
	views := make([]tea.Model, len(w.order))
	for i, id := range w.order {
		views[i] = w.views[id]
	}
	return sequence.NewLinear(views...)
}

func (w *Wizard) collection(def Definition) sequence.Source {
	items := make([]any, len(def.Steps))
	for i, s := range def.Steps {
		items[i] = s
	}
	w.Steps = collection.New(items...)

	placeholder := steps.NewNotice(def.Title, constants.Dialog.Placeholder)
	source := sequence.NewCollectionSource(w.mapStep, placeholder)
	source.Bind(w.Steps)
	return source
}

// mapStep returns the view for a StepDef item, creating and remembering one
// for steps added after Build.
func (w *Wizard) mapStep(item any) tea.Model {
	s, ok := item.(StepDef)
	if !ok {
		assert.Failf("config: collection item %T is not a step definition", item)
	}

	if v, ok := w.views[s.ID]; ok {
		return v
	}

	v := w.newView(s)
	w.views[s.ID] = v
	w.order = append(w.order, s.ID)
	return v
}

func (w *Wizard) chain() sequence.Source {
	resolve := func(id string) any {
		v, ok := w.views[id]
		if !ok {
			return nil
		}
		return v
	}

	for _, v := range w.views {
		if l, ok := v.(interface{ Link(steps.Resolver) }); ok {
			l.Link(resolve)
		}
	}

	return sequence.NewChainSource(w.views[w.order[0]])
}
