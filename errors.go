// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public colser API,
// covering malformed frames, capacity limits, element encoding and codec
// registration.

// Package colser serializes typed collections into a compact, length-prefixed
// binary frame and back, using a pluggable per-element codec. Collection codecs
// are interned per element codec by a Registry.
package colser

import (
	"errors"
	"fmt"

	"github.com/AndrewDonelson/colser/internal/frame"
)

// Decode errors
var (
	ErrMalformedData = errors.New("colser: malformed collection data")
	ErrTruncated     = frame.ErrTruncated
	ErrTrailingBytes = frame.ErrTrailingBytes
)

// Encode errors
var (
	ErrCapacityExceeded = frame.ErrCapacityExceeded
	ErrEncodeFailed     = errors.New("colser: failed to encode element")
)

// Registry errors
var (
	ErrNilElementCodec   = errors.New("colser: element codec is nil")
	ErrUncomparableCodec = errors.New("colser: element codec is not comparable")
)

// Encryption errors
var (
	ErrInvalidKey         = errors.New("colser: encryption key must be exactly 32 bytes")
	ErrCiphertextTooShort = errors.New("colser: ciphertext too short")
)

// TruncatedError carries the field, segment index and byte counts of a frame
// that ended early.
type TruncatedError = frame.TruncatedError

// MalformedDataError is the error returned by every failed decode. It matches
// ErrMalformedData with errors.Is and unwraps to the underlying cause.
type MalformedDataError struct {
	// Index is the segment that failed, or -1 when the frame itself is bad.
	Index int
	Err   error
}

func (e *MalformedDataError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %v", ErrMalformedData, e.Err)
	}
	return fmt.Sprintf("%v: element %d: %v", ErrMalformedData, e.Index, e.Err)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformedData.
func (e *MalformedDataError) Is(target error) bool { return target == ErrMalformedData }

func malformed(index int, err error) error {
	return &MalformedDataError{Index: index, Err: err}
}
