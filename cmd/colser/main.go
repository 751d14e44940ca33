// Command colser encodes, decodes and inspects collection frames from the
// command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/AndrewDonelson/colser"
	"github.com/AndrewDonelson/colser/internal/config"
	"github.com/AndrewDonelson/colser/internal/observability"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseGlobal(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, "colser:", err)
		return err
	}
	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(stderr, "colser: logger:", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := parseCommand(&opts, cfg.Kind, cfg.Type, stderr); err != nil {
		return err
	}
	logger.Debug("running command",
		zap.String("command", opts.Command),
		zap.String("kind", opts.Kind),
		zap.String("type", opts.Type),
		zap.String("version", colser.Version()),
	)

	e := &env{
		reg:  colser.NewRegistry(colser.Config{Logger: colser.NewZapLogger(logger)}),
		kind: opts.Kind,
		out:  stdout,
	}
	if err := dispatch(e, opts); err != nil {
		logger.Error("command failed", zap.String("command", opts.Command), zap.Error(err))
		return err
	}
	return nil
}
