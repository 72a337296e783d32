// Package form holds the in-progress draft for one entity form, runs the
// required-field checks, and dispatches the store's create or update call.
package form

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// ErrInvalidDraft is returned by Submit when required fields are missing; the
// per-field messages are available through FieldErrors.
var ErrInvalidDraft = errors.New("draft has validation errors")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Controller drives one form instance: Idle -> Submitting -> Idle. A create
// controller resets its draft to the empty defaults after success; an edit
// controller leaves the draft alone and lets the caller close its modal.
type Controller[D, T any] struct {
	Draft D

	empty          D
	resetOnSuccess bool
	state          State
	fieldErrors    map[string]string
	submit         func(context.Context, D) (T, error)
}

// NewCreate builds a controller that posts drafts through submit and resets
// to empty after a successful submission.
func NewCreate[D, T any](empty D, submit func(context.Context, D) (T, error)) *Controller[D, T] {
	return &Controller[D, T]{Draft: empty, empty: empty, resetOnSuccess: true, submit: submit}
}

// NewEdit builds a controller seeded from an existing record.
func NewEdit[D, T any](draft D, submit func(context.Context, D) (T, error)) *Controller[D, T] {
	return &Controller[D, T]{Draft: draft, submit: submit}
}

// Validate normalizes the draft (slug auto-derivation) and runs the
// required-field checks, filling the field -> message map.
func (f *Controller[D, T]) Validate() bool {
	if n, ok := any(&f.Draft).(interface{ Normalize() }); ok {
		n.Normalize()
	}
	f.fieldErrors = map[string]string{}
	err := validate.Struct(f.Draft)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		f.fieldErrors["_"] = err.Error()
		return false
	}
	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		if fe.Tag() == "required" {
			f.fieldErrors[name] = fieldLabel(fe.Field()) + " is required."
		} else {
			f.fieldErrors[name] = fieldLabel(fe.Field()) + " is invalid."
		}
	}
	return false
}

// FieldErrors reports the messages from the last Validate call.
func (f *Controller[D, T]) FieldErrors() map[string]string {
	return f.fieldErrors
}

func (f *Controller[D, T]) State() State {
	return f.state
}

// Submit validates and dispatches the draft. Validation failures block the
// call client-side; server failures surface as the returned error and leave
// the draft editable.
func (f *Controller[D, T]) Submit(ctx context.Context) (T, error) {
	var zero T
	if !f.Validate() {
		return zero, ErrInvalidDraft
	}
	f.state = StateSubmitting
	record, err := f.submit(ctx, f.Draft)
	f.state = StateIdle
	if err != nil {
		return zero, err
	}
	if f.resetOnSuccess {
		f.Draft = f.empty
	}
	return record, nil
}

// fieldLabel turns a struct field name into the label used in validation
// messages: "DiscountAmount" -> "Discount amount", "MainCategoryID" ->
// "Main category ID".
func fieldLabel(field string) string {
	runes := []rune(field)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	for i, w := range words {
		if i == 0 || w == strings.ToUpper(w) {
			continue
		}
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, " ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
