package constants

import "fmt"

type appStrings struct {
	Name  string
	Title string
	Bye   string
}

const name = "Step Wizard"

var App = &appStrings{
	Name:  name,
	Title: fmt.Sprintf("seqwizard - %s", name),
	Bye:   "Bye! To run this wizard again, run `seqwizard run <file>`",
}
