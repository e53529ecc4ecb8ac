package transform

// Option configures decomposition and formatting.
// Use functional options to override the defaults.
//
// Example:
//
//	// Default precision (3 digits for angles and output, 5 for scale factors)
//	s := transform.Normalize("translate(10,50) scale(2) rotate(-45)")
//
//	// Coarser output
//	s := transform.Normalize(attr, transform.WithFloatPrecision(1))
type Option func(*options)

// options holds the resolved configuration for one call.
type options struct {
	floatPrecision     int
	transformPrecision int
	leadingZero        bool
	collapse           bool
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		floatPrecision:     3,
		transformPrecision: 5,
		leadingZero:        true,
		collapse:           true,
	}
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// withOptions replaces the whole configuration with o.
func withOptions(o options) Option {
	return func(dst *options) {
		*dst = o
	}
}

// WithFloatPrecision sets the number of decimal digits kept for angles
// recovered by Decompose and for numbers written by Format.
// Negative values are treated as zero.
func WithFloatPrecision(n int) Option {
	return func(o *options) {
		o.floatPrecision = max(n, 0)
	}
}

// WithTransformPrecision sets the number of decimal digits kept for the
// scale factors Decompose derives from a matrix. A higher value than the
// float precision keeps rounding errors from compounding through the
// rotation and skew angles computed from those factors.
// Negative values are treated as zero.
func WithTransformPrecision(n int) Option {
	return func(o *options) {
		o.transformPrecision = max(n, 0)
	}
}

// WithLeadingZero controls whether Format strips the zero before the
// decimal point (".5" instead of "0.5"). Stripping is on by default.
func WithLeadingZero(strip bool) Option {
	return func(o *options) {
		o.leadingZero = strip
	}
}

// WithCollapse controls whether Normalize multiplies the whole list into one
// matrix before decomposing it. When off, only explicit matrix(...)
// primitives are decomposed and the rest of the list is kept in order.
func WithCollapse(collapse bool) Option {
	return func(o *options) {
		o.collapse = collapse
	}
}
