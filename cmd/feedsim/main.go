// Command feedsim runs the deterministic fake feed backend used for
// local development. Point GRIDIRON_FEED_BASE_URL at its address.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/keelan/gridiron/internal/feedsim"
	"github.com/keelan/gridiron/pkg/logger"
)

func main() {
	addr := flag.String("addr", ":8091", "listen address")
	seed := flag.Int64("seed", 2026, "dataset generation seed")
	drafted := flag.Int("drafted", 36, "number of already-drafted picks")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataset := feedsim.Generate(*seed, *drafted)
	sim := feedsim.New(*addr, dataset)
	if err := sim.Run(ctx); err != nil {
		logger.Get().Error(ctx, "feed simulator failed", logger.Error(err))
	}
}
