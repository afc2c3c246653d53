package blackjack

// Options configures a blackjack table
type Options struct {
	// DefaultBid is the bid the presentation layer should prefill
	DefaultBid int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		DefaultBid: 100,
	}
}
