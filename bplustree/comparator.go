package bplus

// Comparator selects which stored keys a range search returns,
// relative to the query key.
type Comparator int

const (
	// invalid is the zero value so an unset Comparator matches nothing.
	invalid        Comparator = iota
	GreaterOrEqual            // ">=": stored keys at or above the query
	Equal                     // "==": stored keys equal to the query
	LessOrEqual               // "<=": stored keys at or below the query
)

// ParseComparator maps ">=", "==" and "<=" to a Comparator.
// Any other string reports ok == false.
func ParseComparator(s string) (Comparator, bool) {
	switch s {
	case ">=":
		return GreaterOrEqual, true
	case "==":
		return Equal, true
	case "<=":
		return LessOrEqual, true
	}
	return invalid, false
}

func (c Comparator) Valid() bool {
	return c >= GreaterOrEqual && c <= LessOrEqual
}

func (c Comparator) String() string {
	switch c {
	case GreaterOrEqual:
		return ">="
	case Equal:
		return "=="
	case LessOrEqual:
		return "<="
	}
	return "invalid"
}

// match reports whether a stored key whose comparison against the query key
// is res (cmp(query, stored)) passes the comparator. The query sits on the
// left of the comparison.
func (c Comparator) match(res int) bool {
	switch c {
	case GreaterOrEqual:
		return res <= 0
	case Equal:
		return res == 0
	case LessOrEqual:
		return res >= 0
	}
	return false
}
