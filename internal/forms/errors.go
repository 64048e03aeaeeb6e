package forms

import (
	"sort"
	"strings"
)

// Errors maps a form field name to the messages shown next to it. A nil or
// empty Errors means the input was valid.
type Errors map[string][]string

const (
	MsgRequired     = "This field is required."
	MsgInvalidEmail = "Enter a valid email address."
	MsgInvalidDate  = "Enter a valid date."
	MsgInvalidTime  = "Enter a valid time."
	MsgInvalidPick  = "Select a valid choice. That choice is not one of the available choices."
)

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Get returns the messages for field, or nil.
func (e Errors) Get(field string) []string {
	return e[field]
}

func (e Errors) Any() bool {
	return len(e) > 0
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}
