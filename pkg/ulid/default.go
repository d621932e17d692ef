package ulid

import "sync"

var defaultGenerator = sync.OnceValue(func() *Generator { return NewGenerator() })

// Default returns the process-wide Generator, creating it on first use.
func Default() *Generator { return defaultGenerator() }

// New returns a ULID from the default generator in Permissive mode.
func New() (ULID, error) { return Default().Next(Permissive) }

// NewMonotonic returns a ULID from the default generator in Strict mode.
func NewMonotonic() (ULID, error) { return Default().Next(Strict) }

// NewString is New rendered to text.
func NewString() (string, error) { return Default().NextString(Permissive) }

// NewMonotonicString is NewMonotonic rendered to text.
func NewMonotonicString() (string, error) { return Default().NextString(Strict) }
