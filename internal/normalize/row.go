// Package normalize maps parsed invoice data onto the fixed target schema.
// Every target column receives either an explicit value or the null
// marker; columns are never silently omitted.
package normalize

// Value is a nullable cell value. The zero Value is null, which is
// distinct from an empty-string value.
type Value struct {
	S     string
	Valid bool
}

// Null is the explicit null marker.
func Null() Value {
	return Value{}
}

// String wraps a concrete value.
func String(s string) Value {
	return Value{S: s, Valid: true}
}

// Render returns the serialized cell: the value, or the empty cell for
// null. Both sinks share this rendering so their rows stay identical.
func (v Value) Render() string {
	if !v.Valid {
		return ""
	}
	return v.S
}

// Row maps canonical column names to nullable values.
type Row map[string]Value

// Values projects the row onto the ordered target header list. Headers
// with no canonical binding render as null.
func (r Row) Values(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = r[h].Render()
	}
	return out
}
