package builder

// ValueSource looks up loaded record values by field identifier.
type ValueSource interface {
	Lookup(id string) (string, bool)
}

// MapValues is a ValueSource backed by a map keyed by identifier ("1",
// "1.2").
type MapValues map[string]string

func (m MapValues) Lookup(id string) (string, bool) {
	value, ok := m[id]
	return value, ok
}

// ValueFunc adapts a function to ValueSource.
type ValueFunc func(id string) (string, bool)

func (f ValueFunc) Lookup(id string) (string, bool) {
	return f(id)
}
