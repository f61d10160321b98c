// Package timecode represents a position in a video stream as
// hours, minutes, seconds and frames at a given frame rate. The
// primary type in this package is:
//
//	type Timecode struct{ ... }
//
// A Timecode is an immutable value backed by a total frame count.
// It can be built from a frame count, an (h, m, s, f) tuple, or a
// delimited string such as "01:02:03:04", converted between frame
// rates and between drop-frame and non-drop-frame counting, and
// combined with other timecodes, frame counts or strings through
// explicit arithmetic and comparison operations.
//
// Drop-frame counting skips two frame numbers at the start of every
// minute not divisible by ten, keeping 29.97fps displays in step
// with wall-clock time. The rule is generalized here to other
// integer rates in proportion to the classic 30fps schedule; 30 and
// 60 fps follow the standard tables, anything else is best effort.
//
// Rates need not be standard: fps is any positive number, rounded
// to the nearest integer only for frame math. Bounds checking is
// the only validation performed; 0 <= each field <= 99.
package timecode
