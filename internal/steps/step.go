// Package steps provides the step views a wizard definition is built from.
// Every view is a pointer tea.Model that returns itself from Update, so the
// dialog's content slot keeps its identity across updates.
package steps

import (
	"fmt"
	"strings"

	"seqwizard/internal/styles"
)

// Resolver looks up the view registered under a step id. It returns nil when
// no such step exists.
type Resolver func(id string) any

// Answer is one value the user entered along the way.
type Answer struct {
	Label string
	Value string
}

// Answerer is implemented by steps that collect a value.
type Answerer interface {
	Answer() Answer
}

type base struct {
	id      string
	title   string
	prompt  string
	width   int
	resolve Resolver
}

func (b *base) ID() string {
	return b.id
}

// Link sets the resolver used to follow the step's successor id.
func (b *base) Link(resolve Resolver) {
	b.resolve = resolve
}

func (b *base) follow(id string) any {
	if b.resolve == nil || id == "" {
		return nil
	}
	return b.resolve(id)
}

func (b *base) header() string {
	var sb strings.Builder
	sb.WriteString(styles.StepTitleStyle.Render(b.title))
	if b.prompt != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.SubtleTextStyle.Render(b.prompt))
	}
	return sb.String()
}

func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return styles.ErrorStyle.Render(fmt.Sprintf("✗ %s", msg))
}
