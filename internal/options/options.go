// Package options implements the generic functional option pattern shared by the
// engine settings types.
package options

// Option configures a settings value of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build copies base, applies opts to the copy and returns it.
//
// base is typically the DefaultSettings() of an engine package, so every field of the
// returned value is populated even when no option touches it. On error the zero value
// of S is returned.
func Build[S any](base S, opts ...Option[*S]) (S, error) {
	cfg := base
	if err := Apply(&cfg, opts...); err != nil {
		var zero S
		return zero, err
	}

	return cfg, nil
}
