package board

import (
	"github.com/keelan/gridiron/internal/domain/tier"
	"github.com/keelan/gridiron/pkg/logger"
)

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithClassifier sets the tier classifier used for both tier runs.
func WithClassifier(c *tier.Classifier) Option {
	return func(a *Assembler) {
		if c != nil {
			a.tiers = c
		}
	}
}

// WithLogger sets a custom logger for the assembler.
func WithLogger(l logger.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}
