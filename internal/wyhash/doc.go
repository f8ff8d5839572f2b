// Package wyhash implements the 64-bit wyhash mix used to fingerprint the
// bytes of reinterpreted values.
package wyhash
