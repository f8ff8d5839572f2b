// Package convert performs the numeric conversions behind the value path of
// safecast.
//
// Integer to integer conversions go through [safemath] so that overflow and
// silent truncation are reported as errors. Conversions involving floats or
// booleans go through [cast]; a float converted to an integer is truncated
// toward zero.
package convert
