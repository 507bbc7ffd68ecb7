package impl

import (
	"io"
	"log/slog"
	"time"

	"tally/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Loyalty: &config.LoyaltyConfig{
			EarnTimeout:     5 * time.Second,
			ProgramCacheTTL: 30 * time.Second,
		},
	}
}
