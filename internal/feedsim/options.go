package feedsim

import "github.com/keelan/gridiron/pkg/logger"

// Option configures a Sim.
type Option func(*Sim)

// WithLogger sets the simulator logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Sim) {
		s.logger = log
	}
}
