package errors

import (
	"fmt"
	"regexp"
	"strings"
)

// Issue is one problem found while validating a grid configuration.
// Path locates the offending value (for example "nodes[3].tier").
type Issue struct {
	Code    Code   `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("%s: %s", i.Code, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s", i.Code, i.Path, i.Message)
}

// ValidationError collects every fatal issue of a validation pass.
// Validation does not stop at the first problem, so callers can
// report all of them at once.
type ValidationError struct {
	Issues []Issue
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch len(e.Issues) {
	case 0:
		return "validation failed"
	case 1:
		return e.Issues[0].String()
	}
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	return fmt.Sprintf("%d validation issues: %s", len(e.Issues), strings.Join(parts, "; "))
}

// Has reports whether any issue carries the given code.
func (e *ValidationError) Has(code Code) bool {
	for _, is := range e.Issues {
		if is.Code == code {
			return true
		}
	}
	return false
}

// Add appends an issue.
func (e *ValidationError) Add(code Code, path, format string, args ...any) {
	e.Issues = append(e.Issues, Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

// OrNil returns e when it holds at least one issue, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Issues) == 0 {
		return nil
	}
	return e
}

var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidateID checks that an entity identifier is a safe, non-empty token.
// Identifiers end up in SVG ids, cache keys and DOT node names.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "identifier cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidConfig, "identifier too long (max 128 characters)")
	}
	if !identifierRegex.MatchString(id) {
		return New(ErrCodeInvalidConfig, "invalid identifier: %q", id)
	}
	return nil
}
