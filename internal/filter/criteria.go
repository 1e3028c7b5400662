package filter

// Value holds the parsed value of one active filter field. Which member is
// meaningful depends on the field's Kind.
type Value struct {
	Text string   `json:"text,omitempty"`
	Set  []string `json:"set,omitempty"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Flag bool     `json:"flag,omitempty"`
}

// Criteria is the typed representation of the filter parameters present in a
// URL query string. Absence of a key means no constraint on that field, never
// "match empty". Criteria are ephemeral: re-parsed from the query string on
// every request.
type Criteria map[string]Value

// Active reports whether any filter field carries a constraint.
func (c Criteria) Active() bool {
	return len(c) > 0
}
