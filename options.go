package caltime

// Option marker option
type Option func(m *Marker)

// Options represents marker option
type Options []Option

// Apply applies options
func (o Options) Apply(m *Marker) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(m)
	}
}

// WithFieldNames struct field name to calendar field mapping, replaces name matching
func WithFieldNames(index map[string]Field) Option {
	return func(m *Marker) {
		m.index = index
	}
}

// WithNonStrict ignores marker flags without corresponding calendar field
func WithNonStrict() Option {
	return func(m *Marker) {
		m.noStrict = true
	}
}
