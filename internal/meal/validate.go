package meal

import (
	"fmt"
	"strings"

	"middag/internal/model"
	"middag/internal/textutil"
)

// Result reports the outcome of validating a draft. Errors lists the invalid
// required fields in focus priority order: guest first, then meal name.
type Result struct {
	Valid  bool
	Errors []model.Field
}

// Has reports whether the given field failed validation.
func (r Result) Has(field model.Field) bool {
	for _, f := range r.Errors {
		if f == field {
			return true
		}
	}
	return false
}

// FirstInvalid returns the field that should receive input focus after a
// failed save attempt.
func (r Result) FirstInvalid() (model.Field, bool) {
	if len(r.Errors) == 0 {
		return 0, false
	}
	return r.Errors[0], true
}

// Validate checks the draft's required fields. Guest and meal name must be
// non-blank after whitespace trimming; diet and notes are never validated.
func Validate(d model.Draft) Result {
	var errs []model.Field
	if textutil.IsBlank(d.Guest) {
		errs = append(errs, model.FieldGuest)
	}
	if textutil.IsBlank(d.Name) {
		errs = append(errs, model.FieldMealName)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidationError is returned by Commit when the draft fails validation.
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Result.Errors))
	for i, f := range e.Result.Errors {
		names[i] = f.String()
	}
	return fmt.Sprintf("draft is invalid: %s required", strings.Join(names, ", "))
}
