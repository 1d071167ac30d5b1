package types

// PostalRange is an inclusive range of zero-padded 8-digit postal codes.
// Bounds compare lexicographically, which matches numeric order for
// fixed-width digit strings.
type PostalRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Contains reports whether the normalized code falls inside the range.
func (r PostalRange) Contains(code string) bool {
	return code >= r.From && code <= r.To
}

// PostalRanges is the jsonb column shape used by shipping zones.
type PostalRanges []PostalRange

// Contains reports whether any range covers the code.
func (rs PostalRanges) Contains(code string) bool {
	for _, r := range rs {
		if r.Contains(code) {
			return true
		}
	}
	return false
}
