package safecast

import "strings"

// CheckPolicy decides whether a destination layout may be reinterpreted from
// a source layout.
type CheckPolicy interface {
	Check(dst, src Layout) bool
	String() string
}

// CheckFunc adapts a plain predicate to [CheckPolicy].
type CheckFunc struct {
	name string
	fn   func(dst, src Layout) bool
}

// NewCheck returns a [CheckPolicy] named name that delegates to fn.
func NewCheck(name string, fn func(dst, src Layout) bool) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

// Check reports whether fn holds for the pair. A CheckFunc without a
// predicate never holds.
func (c CheckFunc) Check(dst, src Layout) bool {
	return c.fn != nil && c.fn(dst, src)
}

func (c CheckFunc) String() string {
	if c.name == "" {
		return "custom"
	}

	return c.name
}

var (
	// SameSize holds when both types occupy the same number of bytes. It is
	// the default policy.
	SameSize CheckPolicy = NewCheck("same-size", func(dst, src Layout) bool {
		return dst.Size == src.Size
	})

	// FitsIn holds when the destination is no larger than the source. It is
	// meant for views into larger buffers, such as a record inside a mapped
	// file.
	FitsIn CheckPolicy = NewCheck("fits-in", func(dst, src Layout) bool {
		return dst.Size <= src.Size
	})

	// SameAlign holds when both types have the same alignment.
	SameAlign CheckPolicy = NewCheck("same-align", func(dst, src Layout) bool {
		return dst.Align == src.Align
	})

	// PointerFree holds when neither type holds pointers.
	PointerFree CheckPolicy = NewCheck("pointer-free", func(dst, src Layout) bool {
		return !dst.Pointers && !src.Pointers
	})

	// SameLayout requires equal size and alignment.
	SameLayout CheckPolicy = All(SameSize, SameAlign)

	// Strict requires equal size and alignment and no pointers on either
	// side.
	Strict CheckPolicy = All(SameSize, SameAlign, PointerFree)
)

// All returns a [CheckPolicy] that holds only when every policy holds.
func All(policies ...CheckPolicy) CheckPolicy {
	names := make([]string, 0, len(policies))
	for _, p := range policies {
		names = append(names, p.String())
	}

	return NewCheck(strings.Join(names, "+"), func(dst, src Layout) bool {
		for _, p := range policies {
			if !p.Check(dst, src) {
				return false
			}
		}

		return true
	})
}

// Mode is the delivery mode of a reinterpretation.
type Mode uint8

const (
	// ByReference aliases the source storage.
	ByReference Mode = iota
	// ByValue returns a converted copy.
	ByValue
)

func (m Mode) String() string {
	switch m {
	case ByReference:
		return "reference"
	case ByValue:
		return "value"
	default:
		return "unknown"
	}
}

// ReferencePolicy chooses the [Mode] for a destination layout.
type ReferencePolicy func(dst Layout) Mode

// DefaultReference returns [ByValue] for arithmetic destinations and
// [ByReference] for everything else.
func DefaultReference(dst Layout) Mode {
	if dst.Arithmetic {
		return ByValue
	}

	return ByReference
}

// AlwaysReference returns [ByReference] for every destination.
func AlwaysReference(Layout) Mode { return ByReference }

// AlwaysValue returns [ByValue] for every destination.
func AlwaysValue(Layout) Mode { return ByValue }
