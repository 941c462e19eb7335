package tier

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithGapThreshold sets the relative gap that opens a new tier.
func WithGapThreshold(t float64) Option {
	return func(c *Classifier) {
		if t > 0 {
			c.gapThreshold = t
		}
	}
}

// WithMinTierSize sets the tier size required before a locally maximal
// dropoff may open a new tier.
func WithMinTierSize(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.minTierSize = n
		}
	}
}
