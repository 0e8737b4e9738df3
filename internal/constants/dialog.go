package constants

type dialogStrings struct {
	Previous     string
	Next         string
	Finish       string
	DefaultMark  string
	Placeholder  string
	Required     string
	Cancelled    string
	Completed    string
	NoAnswers    string
	SummaryTitle string
}

var Dialog = &dialogStrings{
	Previous:     "‹ Back",
	Next:         "Next ›",
	Finish:       "Finish",
	DefaultMark:  "» ",
	Placeholder:  "Nothing to do here.",
	Required:     "This field is required",
	Cancelled:    "Wizard cancelled.",
	Completed:    "Wizard completed.",
	NoAnswers:    "(no answers yet)",
	SummaryTitle: "Summary",
}
