package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"paymentdeck/config"
	"paymentdeck/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("paydeck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.StringP("config", "c", "", "config file (yaml, json or toml)")
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configFile, fs)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", WrapOperationError("load config", err))
		return 1
	}

	log := logger.NewLogger(stderr, cfg.Log.Level)
	if cfg.Log.Dir != "" {
		if err := log.Init(cfg.Log.Dir); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	}
	defer log.Close()

	app := NewApp(cfg, log.Log, stdout)
	path, err := app.Run()
	if err != nil {
		log.Debugf("run failed: %v", err)
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	fmt.Fprintf(stdout, "PPT 파일 생성 완료: %s\n", path)
	return 0
}
