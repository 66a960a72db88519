package shutdown

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/smart-home/internal/datadog"
)

type saver interface {
	Dirty() bool
	Save() error
}

var exit = os.Exit

// Shutdown saves pending changes, runs closers once the save is done and
// exits. A failed save exits non-zero.
func Shutdown(s saver, closers ...func()) {
	code := 0
	if s != nil && s.Dirty() {
		if err := s.Save(); err != nil {
			log.Error().Err(err).Msg("Changes were not saved")
			code = 1
		}
	}
	for _, c := range closers {
		c()
	}
	datadog.Close()
	exit(code)
}

func ShutdownWithError(err error, msg string) {
	log.Error().Err(err).Msg(msg)
	datadog.Close()
	exit(1)
}
