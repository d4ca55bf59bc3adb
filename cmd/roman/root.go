package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/numerals/romankit/pkg/config"
	"github.com/numerals/romankit/pkg/httpserver"
	"github.com/numerals/romankit/pkg/logger"
	"github.com/numerals/romankit/pkg/roman"
	"github.com/numerals/romankit/svc/convert"
)

const serviceName = "roman"

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Roman     roman.Config
	HTTP      httpserver.Config
}

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfg   appConfig
	codec *roman.Codec
	log   *slog.Logger
}

type rootFlags struct {
	envFiles []string
	extended bool
	aliases  bool
	lenient  bool
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     = &app{}
	)

	cmd := &cobra.Command{
		Use:          "roman",
		Short:        "Convert between integers and Roman numerals",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), a.codec)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVar(&flags.envFiles, "env-file", nil, "read configuration from these .env files (default .env if present)")
	pf.BoolVar(&flags.extended, "extended", false, "accept values up to 4999 (MMMM)")
	pf.BoolVar(&flags.aliases, "aliases", false, "accept medieval letters O, F, P, G and Q when decoding")
	pf.BoolVar(&flags.lenient, "lenient", false, "accept non-canonical spellings such as XCX")

	cmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newTableCmd(a),
		newServeCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, flags rootFlags) error {
	var opts []config.Option
	if len(flags.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(flags.envFiles...))
	}
	cfg, err := config.Load[appConfig](opts...)
	if err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(convert.RequestIDExtractor()),
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}

	var codecOpts []roman.Option
	if flags.extended {
		codecOpts = append(codecOpts, roman.WithUpperBound(roman.ExtendedBound))
	}
	if flags.aliases {
		codecOpts = append(codecOpts, roman.WithAliases(true))
	}
	if flags.lenient {
		codecOpts = append(codecOpts, roman.WithCanonicalCheck(false))
	}
	codec, err := roman.NewCodecFromConfig(cfg.Roman, codecOpts...)
	if err != nil {
		return err
	}

	a.cfg, a.codec, a.log = cfg, codec, logger.New(logOpts...)
	a.log.Debug("configuration loaded",
		slog.Int("upper_bound", codec.UpperBound()),
		slog.Bool("aliases", cfg.Roman.Aliases || flags.aliases),
	)
	return nil
}
