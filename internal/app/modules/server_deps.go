package modules

import (
	"time"

	"sky-herald.io/herald/internal/api/handlers"
	"sky-herald.io/herald/internal/api/middleware"
	"sky-herald.io/herald/internal/config"
)

// tokenLifetime is how long portal session tokens stay valid.
const tokenLifetime = 24 * time.Hour

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.JWTSigningKey),
			Issuer:     "herald",
			ExpiresIn:  tokenLifetime,
		},
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
