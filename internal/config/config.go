package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/thatsimonsguy/smart-home/internal/home"
)

const (
	BackendFlat   = "flat"
	BackendSQLite = "sqlite"
)

type Config struct {
	ConfigFile string        `json:"-" yaml:"-"`
	LogFile    string        `json:"-" yaml:"-"`
	LogLevel   zerolog.Level `json:"-" yaml:"-"`

	Backend      string `json:"backend" yaml:"backend"`
	DataFile     string `json:"data_file" yaml:"data_file"`
	DBPath       string `json:"db_path" yaml:"db_path"`
	HomeCapacity int    `json:"home_capacity" yaml:"home_capacity"`

	EnableDatadog bool     `json:"enable_datadog" yaml:"enable_datadog"`
	DDAgentAddr   string   `json:"dd_agent_addr" yaml:"dd_agent_addr"`
	DDNamespace   string   `json:"dd_namespace" yaml:"dd_namespace"`
	DDTags        []string `json:"dd_tags" yaml:"dd_tags"`
}

func Load() Config {
	var cfg Config
	var logLevel string

	flag.StringVar(&cfg.ConfigFile, "config-file", "config.json", "Path to smart home config file (.json or .yaml)")
	flag.StringVar(&cfg.LogFile, "log-file", "", "Append logs to this file instead of stderr")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg.LogLevel = parseLogLevel(logLevel)

	if err := cfg.readFile(cfg.ConfigFile); err != nil {
		panic("Failed to load config file: " + err.Error())
	}

	cfg.setDefaults()
	cfg.validate()
	return cfg
}

// readFile decodes path into cfg. A missing file leaves cfg untouched so
// defaults apply.
func (cfg *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(expanded, cfg)
	default:
		err = json.Unmarshal(expanded, cfg)
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) setDefaults() {
	if cfg.Backend == "" {
		cfg.Backend = BackendFlat
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "smart_homes.csv"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "data/smart_homes.db"
	}
	if cfg.HomeCapacity == 0 {
		cfg.HomeCapacity = home.DefaultCapacity
	}
	if cfg.DDAgentAddr == "" {
		cfg.DDAgentAddr = "127.0.0.1:8125"
	}
	if cfg.DDNamespace == "" {
		cfg.DDNamespace = "smarthome."
	}
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (cfg *Config) validate() {
	var problems []string

	switch cfg.Backend {
	case BackendFlat:
		if cfg.DataFile == "" {
			problems = append(problems, "data_file is required for the flat backend")
		}
	case BackendSQLite:
		if cfg.DBPath == "" {
			problems = append(problems, "db_path is required for the sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown backend %q", cfg.Backend))
	}

	if cfg.HomeCapacity < 0 {
		problems = append(problems, fmt.Sprintf("home_capacity must not be negative, got %d", cfg.HomeCapacity))
	}

	if len(problems) > 0 {
		panic("Invalid config: " + strings.Join(problems, ", "))
	}
}
