package booking

import (
	"errors"
	"fmt"

	"meeting-room-booking/internal/domain/slot"
)

type Kind string

const (
	KindMissingField      Kind = "missing-field"
	KindInvalidTimeGrid   Kind = "invalid-time-grid"
	KindEndBeforeStart    Kind = "end-before-start"
	KindSlotConflict      Kind = "slot-conflict"
	KindMissingQueryParam Kind = "missing-query-param"
)

// Sentinels for errors.Is; a *ValidationError matches the sentinel of its kind.
var (
	ErrMissingField      = errors.New("please fill in all required fields")
	ErrInvalidTimeGrid   = errors.New("times must be in 30-minute increments between 09:00 and 17:00")
	ErrEndBeforeStart    = errors.New("end time must be later than start time")
	ErrSlotConflict      = errors.New("that time slot overlaps with an existing booking")
	ErrMissingQueryParam = errors.New("room and date are required")

	// ErrInvalidDate is a parse failure, so it also matches slot.ErrParse.
	ErrInvalidDate = fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", slot.ErrParse)
)

var sentinelByKind = map[Kind]error{
	KindMissingField:      ErrMissingField,
	KindInvalidTimeGrid:   ErrInvalidTimeGrid,
	KindEndBeforeStart:    ErrEndBeforeStart,
	KindSlotConflict:      ErrSlotConflict,
	KindMissingQueryParam: ErrMissingQueryParam,
}

// ValidationError is the single user-displayable reason a candidate was rejected.
type ValidationError struct {
	Kind  Kind
	Field string
}

func newValidationError(kind Kind, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field}
}

func (e *ValidationError) Error() string {
	msg := sentinelByKind[e.Kind].Error()
	if e.Field == "" {
		return msg
	}
	return fmt.Sprintf("%s (%s)", msg, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return sentinelByKind[e.Kind]
}

// KindOf extracts the validation kind, or "" when err is not a ValidationError.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
