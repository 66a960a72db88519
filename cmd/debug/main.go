package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thatsimonsguy/smart-home/db"
	"github.com/thatsimonsguy/smart-home/internal/config"
	"github.com/thatsimonsguy/smart-home/internal/logging"
	"github.com/thatsimonsguy/smart-home/internal/store"
)

func main() {
	DebugCLI()
}

func DebugCLI() {
	var command, file string
	flag.StringVar(&command, "cmd", "", "Command to run: export, import")
	flag.StringVar(&file, "file", "", "Flat record file to import (defaults to data_file)")
	help := flag.Bool("help", false, "Show help")

	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFile)

	if *help || command == "" {
		fmt.Println("\nUsage of smarthome-debug:")
		fmt.Println("  -config-file string\tPath to smart home config file (default 'config.json')")
		fmt.Println("  -cmd string\tCommand to run: export, import")
		fmt.Println("  -file string\tFlat record file to import into the sqlite database")
		fmt.Println("  -help\tShow this help message")
		os.Exit(0)
	}

	var err error
	switch command {
	case "export":
		if cfg.Backend == config.BackendSQLite {
			err = db.ExportCLI(cfg.DBPath, os.Stdout)
		} else {
			c, loadErr := store.New(cfg.DataFile, cfg.HomeCapacity).Load()
			if loadErr != nil {
				err = loadErr
				break
			}
			err = store.Encode(os.Stdout, c)
		}
	case "import":
		if file == "" {
			file = cfg.DataFile
		}
		var n int
		n, err = db.ImportFlatFileCLI(cfg.DBPath, file, cfg.HomeCapacity)
		if err == nil {
			fmt.Printf("Imported %d home(s) from %s into %s\n", n, file, cfg.DBPath)
		}
	default:
		fmt.Println("Invalid command")
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Command %s failed: %v\n", command, err)
		os.Exit(1)
	}
}
