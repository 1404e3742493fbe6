package bursar

import (
	"log/slog"

	"go.uber.org/fx"

	"campustap/internal/config"
)

// Module exposes the bursar client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// newClient returns a nil client when no bursar address is configured;
// balance sync is simply disabled in that case.
func newClient(p clientParams) (Client, error) {
	if p.Config.BursarAddress == "" {
		return nil, nil
	}
	return NewHTTPClient(p.Config.BursarAddress, p.Logger)
}
