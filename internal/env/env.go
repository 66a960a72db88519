package env

import (
	"github.com/thatsimonsguy/smart-home/internal/config"
)

var (
	Cfg *config.Config
)
