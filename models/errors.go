package models

import (
	"sort"
	"strings"
)

// Field names used as Errors keys.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
)

var fieldOrder = []string{FieldName, FieldEmail, FieldPassword, FieldPasswordConfirmation}

var fieldLabels = map[string]string{
	FieldName:                 "Name",
	FieldEmail:                "Email",
	FieldPassword:             "Password",
	FieldPasswordConfirmation: "Password confirmation",
}

// Errors maps a field name to the messages of the rules it failed, in rule order.
type Errors map[string][]string

// Add appends a message for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// On returns the messages recorded for field.
func (e Errors) On(field string) []string {
	return e[field]
}

// Any reports whether at least one rule failed.
func (e Errors) Any() bool {
	return len(e) > 0
}

// FullMessages renders each failure as a sentence, e.g. "Name can't be blank".
func (e Errors) FullMessages() []string {
	var out []string
	for _, field := range e.fields() {
		label, ok := fieldLabels[field]
		if !ok {
			label = field
		}
		for _, msg := range e[field] {
			out = append(out, label+" "+msg)
		}
	}
	return out
}

func (e Errors) Error() string {
	return "validation failed: " + strings.Join(e.FullMessages(), ", ")
}

// fields returns the failing fields, known ones first in declaration order.
func (e Errors) fields() []string {
	var known, extra []string
	for _, f := range fieldOrder {
		if _, ok := e[f]; ok {
			known = append(known, f)
		}
	}
	for f := range e {
		if _, ok := fieldLabels[f]; !ok {
			extra = append(extra, f)
		}
	}
	sort.Strings(extra)
	return append(known, extra...)
}
