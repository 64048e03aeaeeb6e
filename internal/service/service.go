// Package service implements the application's read and write flows on top
// of the repositories: form validation, store-backed checks and pagination.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/models"
	"github.com/farellandr/eventure/internal/pagination"
	"github.com/farellandr/eventure/internal/repository"
)

var (
	ErrNotFound   = repository.ErrNotFound
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries the field errors of a rejected form submission.
type ValidationError struct {
	Fields forms.Errors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldErrors returns the field errors carried by err, or nil.
func FieldErrors(err error) forms.Errors {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

func invalid(errs forms.Errors) error {
	if !errs.Any() {
		return nil
	}
	return &ValidationError{Fields: errs}
}

// Clock reports the current instant in the server's local zone.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today is the local calendar date.
func (c Clock) Today() time.Time {
	return models.DateOf(c())
}

func paginate(total int64, perPage int, raw string) (*pagination.Page, repository.Page, error) {
	page, err := pagination.New(total, perPage, raw)
	if err != nil {
		return nil, repository.Page{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return page, repository.Page{Limit: page.Limit(), Offset: page.Offset()}, nil
}
