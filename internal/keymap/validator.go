package keymap

import (
	"fmt"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		fmt.Fprintf(&sb, "Errors (%d):\n", len(r.Errors))
		for _, err := range r.Errors {
			fmt.Fprintf(&sb, "  - %s\n", err.Error())
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&sb, "Warnings (%d):\n", len(r.Warnings))
		for _, warn := range r.Warnings {
			fmt.Fprintf(&sb, "  - %s\n", warn.Error())
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys should keep their default action
	reservedKeys map[string]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+q": ActionQuit,
		},
	}
}

// Validate checks a registry. A key bound both in a focus context and in the
// global context is an error: both tables fire on every key, so the pair
// would run two actions for one press.
func (v *Validator) Validate(r *Registry) *ValidationResult {
	result := &ValidationResult{}

	for _, ctx := range Contexts {
		for _, b := range r.Bindings(ctx) {
			if !b.Action.Known() {
				result.Errors = append(result.Errors, ValidationError{
					Type: "invalid", Context: ctx, Key: b.Key,
					Message: fmt.Sprintf("unknown action %q", b.Action),
				})
				continue
			}
			if want := b.Action.Context(); want != ctx {
				result.Errors = append(result.Errors, ValidationError{
					Type: "invalid", Context: ctx, Key: b.Key,
					Message: fmt.Sprintf("action %q belongs to context '%s'", b.Action, want),
				})
			}
			if ctx == ContextGlobal {
				continue
			}
			if global, ok := r.bindings[ContextGlobal][b.Key]; ok {
				result.Errors = append(result.Errors, ValidationError{
					Type: "conflict", Context: ctx, Key: b.Key,
					Message: fmt.Sprintf("also bound globally to %q", global),
				})
			}
		}
	}

	for k, want := range v.reservedKeys {
		if got, ok := r.bindings[ContextGlobal][k]; !ok || got != want {
			result.Warnings = append(result.Warnings, ValidationError{
				Type: "warning", Context: ContextGlobal, Key: k,
				Message: fmt.Sprintf("reserved key no longer bound to %q", want),
			})
		}
	}

	if len(r.Keys(ContextGlobal, ActionQuit)) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Type: "invalid", Context: ContextGlobal, Key: "-",
			Message: "no key bound to quit",
		})
	}

	return result
}
