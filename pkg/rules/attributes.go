package rules

// Attributes is the resolved attribute set for one example entry.
// Insertion order is preserved for serialization, and the first write
// to a name wins: later writes to the same name are ignored. This is
// what gives earlier-declared rules precedence when several matching
// rules define the same attribute.
type Attributes struct {
	names  []string
	values map[string]string
}

// NewAttributes returns an empty attribute set
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

// Set writes the attribute unless the name is already present.
// Returns true if the write took effect.
func (a *Attributes) Set(name, value string) bool {
	if _, used := a.values[name]; used {
		return false
	}
	a.names = append(a.names, name)
	a.values[name] = value
	return true
}

// Get returns the value for name and whether it is set
func (a *Attributes) Get(name string) (string, bool) {
	value, ok := a.values[name]
	return value, ok
}

// Has reports whether the attribute name is set
func (a *Attributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Names returns the attribute names in insertion order
func (a *Attributes) Names() []string {
	return a.names
}

// Len returns the number of attributes set
func (a *Attributes) Len() int {
	return len(a.names)
}
