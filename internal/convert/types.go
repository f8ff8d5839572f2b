package convert

import (
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
	"golang.org/x/exp/constraints"
)

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// IntersectionType is a type constraint that matches types that are both
// [cast.Basic] and [safemath.Integer].
type IntersectionType interface {
	cast.Basic
	safemath.Integer
}

// Arithmetic matches booleans, integers and floating-point numbers, including
// named types over them.
type Arithmetic interface {
	constraints.Integer | constraints.Float | ~bool
}
