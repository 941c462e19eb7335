package replacement

// buildConfig carries optional Build inputs.
type buildConfig struct {
	drafted map[string]bool
}

// Option applies a configuration option to Build.
type Option func(*buildConfig)

// WithDraftedSet restricts the replacement pool to undrafted players.
func WithDraftedSet(drafted map[string]bool) Option {
	return func(c *buildConfig) {
		if len(drafted) > 0 {
			c.drafted = drafted
		}
	}
}
