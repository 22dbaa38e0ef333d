package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nealhardesty/p2k/internal/controller"
	"github.com/nealhardesty/p2k/internal/engine"
	"github.com/nealhardesty/p2k/internal/keyboard"
	"github.com/nealhardesty/p2k/internal/mapping"
	"github.com/nealhardesty/p2k/internal/poller"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	var rootCmd = &cobra.Command{
		Use:   "p2k [config-file]",
		Short: "Gamepad to Keyboard Mapper",
		Long: `Maps gamepad buttons and triggers to keyboard keys.

The config file holds whitespace separated "<CONTROL> <HEX_KEYCODE>" pairs,
for example "A 41 LT 10". Controls: UP DOWN LEFT RIGHT START BACK LSB RSB
LT RT LB RB A B X Y. Key codes are Windows virtual-key codes.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := mapping.DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			table, err := mapping.LoadFile(path)
			if err != nil {
				reportConfigError(&logger, path, err)
				os.Exit(1)
			}
			logger.Info().Str("path", path).Int("buttons", len(table.Buttons)).Msg("Loaded config file")

			if err := run(table, &logger); err != nil {
				logger.Error().Err(err).Msg("Error running mapper")
				os.Exit(1)
			}
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// reportConfigError explains why the config could not be loaded. Placement
// guidance is only given when the file could not be opened.
func reportConfigError(logger *zerolog.Logger, path string, err error) {
	if errors.Is(err, mapping.ErrInvalidConfig) {
		logger.Error().Err(err).Str("path", path).Msg("Invalid config file")
		return
	}
	logger.Error().Err(err).Str("path", path).Msg("No config file found")
	logger.Info().Msgf("Place your config file %q in the working directory, or run %q.",
		mapping.DefaultConfigFile, "p2k <path to your config file>")
}

func run(table *mapping.Table, logger *zerolog.Logger) error {
	source, err := controller.Default(subsystem(logger, "controller"))
	if err != nil {
		return err
	}
	defer source.Close()

	kb, err := keyboard.NewInjector(subsystem(logger, "keyboard"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := poller.New(source, engine.New(table), kb, subsystem(logger, "poller"))
	logger.Info().Msg("Gamepad to keyboard mapper started")
	if err := p.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("Stopped")
	return nil
}

func subsystem(logger *zerolog.Logger, name string) *zerolog.Logger {
	l := logger.With().Str("subsystem", name).Logger()
	return &l
}
