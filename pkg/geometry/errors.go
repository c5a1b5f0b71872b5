package geometry

import (
	"errors"
	"fmt"
)

var (
	ErrDegenerate = errors.New("geometry: degenerate primitive")
	ErrNilShape   = errors.New("geometry: nil shape")
)

// Validate walks a shape tree and returns the first construction error found
func Validate(shape Shape) error {
	if shape == nil {
		return ErrNilShape
	}
	if v, ok := shape.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func degenerate(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDegenerate)
}
