package timecode

import "errors"

// ErrInvalidRate is the error returned when a frame rate is zero,
// negative, or too small to round to a whole frame per second.
var ErrInvalidRate = errors.New("invalid frame rate")

// ErrOutOfRange is the error returned when an hours, minutes, seconds
// or frames field falls outside [0, 99], or a frame count is negative.
var ErrOutOfRange = errors.New("out of range")

// ErrParse is the error returned for a malformed timecode string or a
// field tuple of the wrong arity.
var ErrParse = errors.New("cannot parse timecode")
