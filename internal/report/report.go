// Package report encodes scenario reports as JSON using sonic.
package report

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Report is the outcome of one demonstration scenario.
type Report struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Lines       []string        `json:"lines,omitempty"`
	Checks      map[string]bool `json:"checks,omitempty"`
	Fingerprint uint64          `json:"fingerprint,omitempty"`
	Err         string          `json:"error,omitempty"`
}

// Passed reports whether r finished without error and every check held.
func (r Report) Passed() bool {
	if r.Err != "" {
		return false
	}

	for _, ok := range r.Checks {
		if !ok {
			return false
		}
	}

	return true
}

// Marshal encodes v as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into v using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// MarshalIndent encodes v as indented JSON using the current API config.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// NewEncoder creates a streaming encoder using the current API config.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}

// Encoder is a JSON encoder.
type Encoder = sonic.Encoder

// SetConfig replaces the API config.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}
