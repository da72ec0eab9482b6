package registration

import (
	"io"
	"log/slog"
	"os"

	"FiberAgent-Registry/internal/card"
	"FiberAgent-Registry/internal/config"
	"FiberAgent-Registry/pkg/logger"
)

// Options configures a single run.
type Options struct {
	Layout  config.Layout
	Profile Profile
	Stdout  io.Writer
	Logger  *slog.Logger
}

// Run loads the agent card, prints the guide and writes the environment
// template. A missing card aborts before anything is printed or written.
func Run(opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("registration")
	}

	if err := opts.Profile.Validate(); err != nil {
		return err
	}

	c, err := card.Load(opts.Layout.CardPath)
	if err != nil {
		return err
	}
	log.Debug("agent card loaded", "path", c.Path, "name", c.Name())

	printer := NewPrinter(opts.Stdout)
	if err := printer.Print(c.Name(), opts.Profile); err != nil {
		return err
	}

	if err := WriteEnv(opts.Layout.EnvPath, opts.Profile); err != nil {
		return err
	}
	log.Debug("env template written", "path", opts.Layout.EnvPath)

	return printer.PrintSaved(opts.Layout.EnvPath)
}
