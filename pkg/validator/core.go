package validator

import (
	"errors"
	"strconv"
	"strings"
)

// ErrValidationFailed is matched by every ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError is one failed rule. Code is a stable machine readable name
// such as "required"; Message is meant for logs.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

// ValidationErrors is the list of failed rules in the order they were checked.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

func (ve ValidationErrors) Is(target error) bool { return target == ErrValidationFailed }

func (ve *ValidationErrors) Add(err ValidationError) { *ve = append(*ve, err) }

// Has reports whether at least one error was recorded for field.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) First() (ValidationError, bool) {
	if len(ve) == 0 {
		return ValidationError{}, false
	}
	return ve[0], true
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

func rule(field, code, message string, check func() bool) Rule {
	return Rule{Check: check, Error: ValidationError{Field: field, Code: code, Message: message}}
}

// Apply executes every rule and returns the collected failures, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ApplyFirst executes rules in order and stops at the first failure.
// Use it when later rules are meaningless once an earlier one fails.
func ApplyFirst(rules ...Rule) error {
	for _, r := range rules {
		if !r.Check() {
			return ValidationErrors{r.Error}
		}
	}
	return nil
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// Required fails for a string that is empty after trimming whitespace.
func Required(field, value string) Rule {
	return rule(field, "required", "field is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// PositiveInteger fails unless value is a base 10 integer greater than zero.
func PositiveInteger(field, value string) Rule {
	return rule(field, "positive_integer", "must be a positive integer", func() bool {
		n, err := strconv.ParseInt(value, 10, 64)
		return err == nil && n > 0
	})
}

// NonNegativeInteger fails unless value is a base 10 integer of zero or more.
func NonNegativeInteger(field, value string) Rule {
	return rule(field, "non_negative_integer", "must be zero or a positive integer", func() bool {
		n, err := strconv.ParseInt(value, 10, 64)
		return err == nil && n >= 0
	})
}
