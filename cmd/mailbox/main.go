// mailbox prints a 0x88 mailbox chessboard and walks knight's tours across it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/mailbox-go/internal/config"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("mailbox version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(mainRun())
}

// mainRun does the work of main and returns the exit code, so that deferred
// closes run before the process exits.
func mainRun() (code int) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging and output files
	closeFiles, err := openFiles(cfg, *logFile, *outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeFiles(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if code == 0 {
				code = 1
			}
		}
	}()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openFiles points cfg at the log and output files named by logPath and
// outPath; an empty path keeps the default stream. The returned func closes
// every file that was opened. On error nothing is left open.
func openFiles(cfg *config.Config, logPath, outPath string) (func() error, error) {
	var files []*os.File
	closeAll := func() error {
		var result *multierror.Error
		for _, f := range files {
			if err := f.Close(); err != nil {
				result = multierror.Append(result, err)
			}
		}
		files = nil
		return result.ErrorOrNil()
	}

	if logPath != "" {
		file, err := os.Create(logPath)
		if err != nil {
			return nil, errors.Wrapf(err, "creating log file %s", logPath)
		}
		files = append(files, file)
		cfg.LogFile = file
	}

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			closeAll()
			return nil, errors.Wrapf(err, "creating output file %s", outPath)
		}
		files = append(files, file)
		cfg.OutputFile = file
	}

	return closeAll, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: mailbox [options]\n\n")
	fmt.Fprintf(os.Stderr, "Prints a 0x88 mailbox chessboard and walks knight's tours across it.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  -board  starting position, or the -fen position\n")
	fmt.Fprintf(os.Stderr, "  -tour   demonstration tour from e8, or a solved tour from -from\n")
	fmt.Fprintf(os.Stderr, "  -solve  solve one tour from -from\n")
	fmt.Fprintf(os.Stderr, "  -all    solve tours from all 64 squares\n")
}
