package safecast

type options struct {
	check     CheckPolicy
	reference ReferencePolicy
}

// Option configures a single reinterpretation.
type Option func(*options)

// WithCheck replaces the compatibility policy. A nil policy keeps the
// current one.
func WithCheck(p CheckPolicy) Option {
	return func(o *options) {
		if p != nil {
			o.check = p
		}
	}
}

// WithReference replaces the reference policy used by [Cast]. A nil policy
// keeps the current one.
func WithReference(p ReferencePolicy) Option {
	return func(o *options) {
		if p != nil {
			o.reference = p
		}
	}
}

func newOptions(defaultCheck CheckPolicy, opts []Option) options {
	o := options{check: defaultCheck, reference: DefaultReference}
	if len(opts) == 0 {
		return o
	}

	return o.apply(opts)
}

// apply takes the address of o, so it escapes; newOptions skips it when
// there is nothing to apply.
func (o options) apply(opts []Option) options {
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) enforce(dst, src Layout) error {
	if !o.check.Check(dst, src) {
		return &IncompatibleError{Dst: dst, Src: src, Policy: o.check.String()}
	}

	return nil
}
