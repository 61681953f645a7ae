package render

import "strconv"

// Binder assigns bind-parameter names in strict left-to-right order of
// appearance and collects the out-of-band value map. A nil *Binder means
// the caller wants literals inlined instead.
type Binder struct {
	prefix string
	n      int
	values map[string]any
}

// NewBinder creates a Binder using the dialect's bind-name prefix.
func NewBinder(prefix string) *Binder {
	return &Binder{prefix: prefix, values: make(map[string]any)}
}

// Add records v under the next bind name and returns its marker, e.g.
// $sequelize_3.
func (b *Binder) Add(v any) string {
	b.n++
	name := b.prefix + strconv.Itoa(b.n)
	b.values[name] = v
	return "$" + name
}

// Values returns the collected bind map.
func (b *Binder) Values() map[string]any {
	return b.values
}
