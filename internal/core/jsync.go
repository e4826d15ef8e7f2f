// internal/core/jsync.go
package core

import (
	"errors"
	"fmt"
)

// ErrJSyncInput is returned for a missing or unsupported jsync input.
var ErrJSyncInput = errors.New("core: unsupported jsync input")

// JSyncInput is the physical form of the jsync confirmation signal.
// Exactly DirectLevel and DifferentialPair are accepted.
type JSyncInput interface {
	jsyncInput()
}

// DirectLevel is a single-ended, already-decoded logic level.
type DirectLevel struct {
	Level func() bool
}

// DifferentialPair is a p/n pair. The level is p when p and n disagree;
// an equal pair (common mode) holds the last decoded level.
type DifferentialPair struct {
	P, N func() bool
}

func (DirectLevel) jsyncInput()      {}
func (DifferentialPair) jsyncInput() {}

// resolveJSync turns a jsync input into one level source, once, at construction.
func resolveJSync(in JSyncInput) (func() bool, error) {
	switch v := in.(type) {
	case DirectLevel:
		if v.Level == nil {
			return nil, fmt.Errorf("%w: direct level without source", ErrJSyncInput)
		}
		return v.Level, nil

	case DifferentialPair:
		if v.P == nil || v.N == nil {
			return nil, fmt.Errorf("%w: differential pair needs both p and n", ErrJSyncInput)
		}
		last := false
		return func() bool {
			if p, n := v.P(), v.N(); p != n {
				last = p
			}
			return last
		}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrJSyncInput, in)
}
