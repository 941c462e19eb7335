package valuation

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithPlayoffWeeks overrides the 1-based fantasy playoff weeks used for
// the playoff adjustment.
func WithPlayoffWeeks(weeks []int) Option {
	return func(p *Pipeline) {
		if len(weeks) > 0 {
			p.playoffWeeks = weeks
		}
	}
}
