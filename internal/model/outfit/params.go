package outfit

// MaxLimit caps how many items one catalog search may request. The cap
// protects against unbounded fan-out to the external API and is applied
// regardless of what a caller asked for.
const MaxLimit = 10

// SearchParams describes one bounded catalog search. Zero values mean
// "not set" for the integer filters; the catalog numbers its categories
// from 1.
type SearchParams struct {
	Category    int
	Subcategory int
	Genre       int
	Keyword     string
	MinPrice    *int
	MaxPrice    *int
	Limit       int
}

// Clamped returns a copy with Limit forced into (0, MaxLimit].
func (p SearchParams) Clamped() SearchParams {
	if p.Limit <= 0 || p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
