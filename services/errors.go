package services

import "errors"

// Failure kinds of the capture-to-log pipeline. Services wrap these with
// %w so controllers can classify with errors.Is; the underlying cause
// (HTTP body, SQL error) is logged where it happens and never travels
// up into a user-facing message.
var (
	ErrVision      = errors.New("image analysis failed")
	ErrValidation  = errors.New("invalid meal entry")
	ErrPersistence = errors.New("could not save entry")
)
