package controller

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/smart-home/db"
	"github.com/thatsimonsguy/smart-home/internal/config"
	"github.com/thatsimonsguy/smart-home/internal/store"
)

// OpenStore builds the store named by cfg.Backend. The returned func
// releases any resources the store holds.
func OpenStore(cfg *config.Config) (Store, func(), error) {
	switch cfg.Backend {
	case config.BackendFlat:
		log.Debug().Str("backend", cfg.Backend).Str("path", cfg.DataFile).Msg("Using flat file store")
		return store.New(cfg.DataFile, cfg.HomeCapacity), func() {}, nil
	case config.BackendSQLite:
		conn, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("backend", cfg.Backend).Str("path", cfg.DBPath).Msg("Using sqlite store")
		return db.NewStore(conn), func() { conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
