package modules

import (
	"time"

	"crewpulse.io/crewpulse/internal/api/handlers"
	"crewpulse.io/crewpulse/internal/api/middleware"
	"crewpulse.io/crewpulse/internal/config"
)

const jwtLifetime = 24 * time.Hour

// NewServerDeps builds base server deps then lets each module contribute
// explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.JWTSigningKey),
			Issuer:     "crewpulse",
			ExpiresIn:  jwtLifetime,
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
