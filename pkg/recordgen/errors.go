package recordgen

import "errors"

// Sentinel errors for common error conditions
var (
	// Input validation errors
	ErrInvalidSeed      = errors.New("invalid seed")
	ErrInvalidPage      = errors.New("invalid page number")
	ErrInvalidErrorRate = errors.New("invalid error rate")

	// Generation errors
	ErrGeneration = errors.New("record generation failed")
)

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidSeed) ||
		errors.Is(err, ErrInvalidPage) ||
		errors.Is(err, ErrInvalidErrorRate)
}
