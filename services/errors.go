package services

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("post not found")
var ErrValidation = errors.New("invalid post")

type Rule string

const (
	RuleMissing   Rule = "missing"
	RuleEmpty     Rule = "empty"
	RuleDuplicate Rule = "duplicate"
	RuleType      Rule = "type"
	RuleFormat    Rule = "format"
	RuleNegative  Rule = "negative"
)

// ValidationError names the first rule a candidate post broke.
type ValidationError struct {
	Field string
	Rule  Rule
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleMissing:
		return fmt.Sprintf("%s: field %q is required", ErrValidation, e.Field)
	case RuleEmpty:
		return fmt.Sprintf("%s: field %q is empty", ErrValidation, e.Field)
	case RuleDuplicate:
		return fmt.Sprintf("%s: %s is already taken", ErrValidation, e.Field)
	case RuleType:
		return fmt.Sprintf("%s: field %q has the wrong type", ErrValidation, e.Field)
	case RuleFormat:
		return fmt.Sprintf("%s: field %q is badly formatted", ErrValidation, e.Field)
	case RuleNegative:
		return fmt.Sprintf("%s: field %q is negative", ErrValidation, e.Field)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrValidation, e.Field, e.Rule)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field string, rule Rule) error {
	return &ValidationError{Field: field, Rule: rule}
}

func notFound(title string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, title)
}
