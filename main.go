package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/RCastroAB/autocomplete-python/internal/config"
	"github.com/RCastroAB/autocomplete-python/internal/engine/lexical"
	"github.com/RCastroAB/autocomplete-python/internal/handler"
)

const name = "autocomplete-python"

const version = "0.1.0"

var revision = "HEAD"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	os.Exit(0)
}

func realMain() error {
	app := &cli.App{
		Name:    name,
		Version: fmt.Sprintf("Version:%s, Revision:%s\n", version, revision),
		Usage:   "A JSON-over-stdio bridge between an editor and a Python analysis engine.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "Also log to this file. (in addition to stderr)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Specifies an alternative per-user configuration file.",
			},
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "Print all requests and responses.",
			},
		},
		Action: func(c *cli.Context) error {
			return serve(c)
		},
	}
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print version.",
	}
	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   "Print help.",
	}

	return app.Run(os.Args)
}

func serve(c *cli.Context) error {
	logfile := c.String("log")
	configFile := c.String("config")
	trace := c.Bool("trace")

	// Load config
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.GetConfig(configFile)
		if err != nil {
			return fmt.Errorf("cannot read specified config, %w", err)
		}
	} else {
		cfg, err = config.GetDefaultConfig()
		if err != nil && !errors.Is(err, config.ErrNotFoundConfig) {
			return fmt.Errorf("cannot read default config, %w", err)
		}
	}

	// Initialize log writer. Diagnostics go to stderr so the protocol
	// stream on stdout stays clean.
	if logfile == "" && cfg != nil {
		logfile = cfg.LogFile
	}
	var logWriter io.Writer = os.Stderr
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			return fmt.Errorf("cannot open log file, %w", err)
		}
		defer f.Close()
		logWriter = io.MultiWriter(os.Stderr, f)
	}
	logger := log.NewWithOptions(logWriter, log.Options{
		Prefix:          name,
		ReportTimestamp: true,
	})
	if trace {
		logger.SetLevel(log.DebugLevel)
	}

	server := handler.NewServer(lexical.New(), cfg, logger)
	server.Trace = trace

	// One-shot mode: each argument is one complete JSON request.
	if c.Args().Len() > 0 {
		for _, arg := range c.Args().Slice() {
			server.ServeOne(arg, os.Stdout)
		}
		return nil
	}

	logger.Info("reading on stdin, writing on stdout")
	if err := server.Serve(os.Stdin, os.Stdout); err != nil {
		return err
	}
	logger.Info("input closed")
	return nil
}
