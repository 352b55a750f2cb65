package dataset

// Option configures Load and the writers.
type Option func(*Options)

// Options holds CSV dialect and coercion settings.
type Options struct {
	// Header marks the first row as column names: skipped on load, written on save.
	Header bool
	// ZeroFill replaces unparsable or non-finite cells with 0 instead of failing.
	ZeroFill bool
	// Comma is the field delimiter.
	Comma rune
}

// DefaultOptions: headerless, strict numeric parsing, comma-separated.
func DefaultOptions() Options {
	return Options{Comma: ','}
}

// WithHeader treats the first row as a header.
func WithHeader() Option {
	return func(o *Options) { o.Header = true }
}

// WithZeroFill coerces unparsable cells to 0.
func WithZeroFill() Option {
	return func(o *Options) { o.ZeroFill = true }
}

// WithComma sets the field delimiter; zero keeps the default.
func WithComma(r rune) Option {
	return func(o *Options) {
		if r != 0 {
			o.Comma = r
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
