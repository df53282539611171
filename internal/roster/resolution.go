package roster

// Status classifies a lookup result. The historical behavior of silently
// taking the first duplicate row is kept (Address returns the first
// candidate), but duplicates now surface as Ambiguous so callers can log or
// reject them.
type Status string

const (
	Resolved  Status = "resolved"
	Ambiguous Status = "ambiguous"
	NotFound  Status = "not_found"
)

// Resolution is the outcome of one address lookup. Candidates holds every
// matching address in roster order; it is empty only for NotFound.
type Resolution struct {
	Status     Status
	Candidates []string
}

// Address returns the effective address: the first candidate in roster
// order, or "" when nothing matched.
func (r Resolution) Address() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0]
}

// HasAddress reports whether the resolution produced a usable, non-empty
// address. A matched roster row with a blank address cell counts as not
// usable.
func (r Resolution) HasAddress() bool {
	return r.Address() != ""
}
