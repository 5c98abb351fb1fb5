package observability

import (
	"context"

	"github.com/peermint/peermint/pkg/config"
	"github.com/peermint/peermint/pkg/logger"
)

var global *Observability

// Initialize constructs the observability components and installs them as the
// process-wide instance accessible via G().
func Initialize(ctx context.Context, cfg config.Observability, log logger.Logger) (*Observability, error) {
	obs, err := New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	global = obs
	return obs, nil
}

// G retrieves the global observability instance. May be nil when Initialize
// has not been called; every recording method tolerates that.
func G() *Observability {
	return global
}
