// Package tier buckets valued players into ordered tiers using a hybrid
// rule over the adjusted-VOR sequence: a relative clustering gap opens a
// new tier immediately, and once a tier reaches its minimum size a
// locally maximal dropoff opens one too. Tier numbers are 1-based and
// smaller is better.
package tier

import "math"

// Default classifier thresholds; both are league-configurable.
const (
	defaultGapThreshold = 0.18
	defaultMinTierSize  = 4
)

// Classifier assigns tiers to a descending-sorted value sequence.
type Classifier struct {
	gapThreshold float64
	minTierSize  int
}

// New creates a Classifier with configuration options.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		gapThreshold: defaultGapThreshold,
		minTierSize:  defaultMinTierSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns a 1-based tier per input index. Values must be sorted
// descending by adjusted VOR; equal values never split a tier, so ties
// keep their incoming order. Tier numbers are non-decreasing along the
// input.
func (c *Classifier) Classify(values []float64) []int {
	n := len(values)
	if n == 0 {
		return nil
	}

	gaps := make([]float64, n)
	for i := 1; i < n; i++ {
		gaps[i] = values[i-1] - values[i]
	}

	tiers := make([]int, n)
	tiers[0] = 1
	tier, size := 1, 1
	for i := 1; i < n; i++ {
		boundary := c.isClusterGap(values[i-1], gaps[i]) ||
			(size >= c.minTierSize && locallyMaximal(gaps, i))
		if boundary {
			tier++
			size = 1
		} else {
			size++
		}
		tiers[i] = tier
	}
	return tiers
}

// isClusterGap reports whether a gap is large relative to the value it
// falls from.
func (c *Classifier) isClusterGap(from, gap float64) bool {
	return gap > c.gapThreshold*math.Max(math.Abs(from), 1)
}

// locallyMaximal reports whether gap i is a local maximum among its
// neighbors.
func locallyMaximal(gaps []float64, i int) bool {
	if gaps[i] <= 0 {
		return false
	}
	var left, right float64
	if i-1 >= 1 {
		left = gaps[i-1]
	}
	if i+1 < len(gaps) {
		right = gaps[i+1]
	}
	return gaps[i] >= left && gaps[i] >= right
}

// labels ranks tier quality from best to worst.
var labels = []string{"Elite", "Great", "Solid", "Starter", "Bench"}

// Label maps a tier to a human label scaled by its relative position in
// [1, maxTier]. Tier 1 is always Elite and the last tier always Bench
// when more than one tier exists.
func Label(tier, maxTier int) string {
	if tier < 1 || maxTier < 1 {
		return ""
	}
	if maxTier == 1 {
		return labels[0]
	}
	idx := int(math.Ceil(float64(tier) / float64(maxTier) * float64(len(labels))))
	if idx < 1 {
		idx = 1
	}
	if idx > len(labels) {
		idx = len(labels)
	}
	return labels[idx-1]
}
