package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/smart-home/internal/config"
	"github.com/thatsimonsguy/smart-home/internal/controller"
	"github.com/thatsimonsguy/smart-home/internal/datadog"
	"github.com/thatsimonsguy/smart-home/internal/env"
	"github.com/thatsimonsguy/smart-home/internal/logging"
	"github.com/thatsimonsguy/smart-home/system/shutdown"
)

func main() {
	flag.Usage = usage
	cfg := config.Load()
	env.Cfg = &cfg
	logging.Init(cfg.LogLevel, cfg.LogFile)
	datadog.InitMetrics()

	log.Debug().
		Str("backend", cfg.Backend).
		Str("config_file", cfg.ConfigFile).
		Msg("Starting smart home")

	st, closeStore, err := controller.OpenStore(&cfg)
	if err != nil {
		shutdown.ShutdownWithError(err, "Failed to open store")
		return
	}

	ctrl := controller.New(st)
	// a failed load has already been logged and leaves an empty collection
	_ = ctrl.Load()

	out, err := run(ctrl, cfg.HomeCapacity, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeStore()
		shutdown.ShutdownWithError(err, "Command failed")
		return
	}
	if out != "" {
		fmt.Println(out)
	}

	shutdown.Shutdown(ctrl, closeStore)
}

func usage() {
	fmt.Fprintln(os.Stderr, "\nUsage of smarthome: smarthome [flags] <command> [args]")
	fmt.Fprintln(os.Stderr, "\nCommands (homes and devices are numbered from 1):")
	fmt.Fprintln(os.Stderr, "  list")
	fmt.Fprintln(os.Stderr, "  show HOME")
	fmt.Fprintln(os.Stderr, "  add-home")
	fmt.Fprintln(os.Stderr, "  add-empty-home")
	fmt.Fprintln(os.Stderr, "  delete-home HOME")
	fmt.Fprintln(os.Stderr, "  add-device HOME KIND [VALUE]   (KIND: SmartPlug, SmartOven, SmartHeater)")
	fmt.Fprintln(os.Stderr, "  remove-device HOME DEVICE")
	fmt.Fprintln(os.Stderr, "  toggle HOME DEVICE")
	fmt.Fprintln(os.Stderr, "  all-on HOME")
	fmt.Fprintln(os.Stderr, "  all-off HOME")
	fmt.Fprintln(os.Stderr, "  set-option HOME DEVICE VALUE")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}
