package contract

import "errors"

var (
	ErrGeneration = errors.New("response generation failed")
	ErrValidation = errors.New("validation failed")
)
