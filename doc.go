// Package safecast reinterprets a value of one type as another type, but only
// when a compatibility policy over the pair of types holds.
//
// The default policy, [SameSize], requires both types to occupy the same
// number of bytes. A reference policy then decides how the result is
// delivered: arithmetic destinations receive a converted copy (a genuine
// numeric conversion such as float to int truncation), every other
// destination receives a pointer that aliases the source storage.
//
//	type NormalPos struct{ X, Y, Z float32 }
//	type ReversePos struct{ Z, Y, X float32 }
//
//	np := NormalPos{1235.2345, 665.198, 860.83496}
//	rp, err := safecast.Ref[ReversePos](&np)
//	// rp.Z == np.X, rp.Y == np.Y, rp.X == np.Z
//
// Aliasing is purely offset based: field k of the destination overlays
// whatever bytes occupy that offset in the source, regardless of names. A
// pointer returned by [Ref], [Cast] or [View] must not outlive the storage it
// was derived from.
//
// Go generics cannot constrain a type parameter on its size, so every call
// evaluates the policy at runtime and returns [ErrIncompatible] instead of
// proceeding. For concrete type pairs the check can also be moved to build
// time with a constant expression that fails to compile on mismatch:
//
//	var _ = [1]struct{}{}[unsafe.Sizeof(NormalPos{})-unsafe.Sizeof(ReversePos{})]
//
// This is not a general-purpose type-punning library. Padding, interface
// values and types holding pointers are only guarded by the opt-in policies
// ([SameAlign], [PointerFree], [Strict]).
package safecast
