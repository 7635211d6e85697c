package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/olusolaa/stack-tail/internal/adapters/platform/aws"
	"github.com/olusolaa/stack-tail/internal/config"
	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/core/service"
	"github.com/olusolaa/stack-tail/internal/errors"
	"github.com/olusolaa/stack-tail/internal/log"
	jsonrenderer "github.com/olusolaa/stack-tail/internal/reporting/json"
	"github.com/olusolaa/stack-tail/internal/reporting/text"
)

// BuildApplicationFromViper loads and validates configuration, then wires the
// AWS provider, the source selected by --resources, the engine and a renderer.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	cfg, err := LoadConfig(ctx, v)
	if err != nil {
		return nil, err
	}

	logger, err := log.NewLogger(log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize logger: %v\n", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	provLog := logger.WithFields(map[string]any{"provider": aws.ProviderTypeAWS})
	provider, err := aws.NewProvider(ctx, cfg.AWS, provLog)
	if err != nil {
		return nil, err
	}
	provLog.Infof(ctx, "Using AWS provider in region %s", provider.Region())

	return BuildApplication(ctx, cfg, provider, logger)
}

// LoadConfig merges defaults, config file, environment and flags into a
// validated Config.
func LoadConfig(ctx context.Context, v *viper.Viper) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg, viper.DecodeHook(config.DecodeHook())); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to parse configuration",
			"Check the types of the values in your config file and environment.")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(ctx, cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
		}
		var details strings.Builder
		details.WriteString("Configuration validation failed:")
		for _, fe := range validationErrors {
			details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Please check your configuration file or flags.")
	}
	return cfg, nil
}

// BuildApplication wires an already-validated configuration against provider.
func BuildApplication(ctx context.Context, cfg *config.Config, provider ports.PlatformProvider, logger ports.Logger) (*Application, error) {
	if cfg.Settings.LogLevel == log.LevelDebug || cfg.Settings.LogLevel == log.LevelInfo {
		logIdentity(ctx, provider, logger)
	}

	registry := service.NewSourceRegistry()
	for _, source := range provider.Sources(cfg.Tail.StackName) {
		if err := registry.RegisterSource(source); err != nil {
			return nil, err
		}
	}
	kind := domain.SourceKindFor(cfg.Tail.Resources)
	source, err := registry.GetSource(kind)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Tailing %s of stack %s (follow=%t)", kind, cfg.Tail.StackName, cfg.Tail.Follow)

	engine, err := service.NewFollowEngine(source, cfg.Tail.Follow,
		logger.WithFields(map[string]any{"component": "engine"}),
		service.WithPollInterval(cfg.Settings.PollInterval),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize follow engine")
	}

	renderer, err := newRenderer(cfg, logger.WithFields(map[string]any{"component": "renderer", "type": cfg.Settings.Output}))
	if err != nil {
		return nil, err
	}

	app := NewApplication(engine, renderer, logger)
	app.Config = cfg
	logger.Debugf(ctx, "Application bootstrap complete")
	return app, nil
}

func newRenderer(cfg *config.Config, logger ports.Logger) (ports.Renderer, error) {
	switch cfg.Settings.Output {
	case jsonrenderer.RendererTypeJSON:
		return jsonrenderer.NewRenderer(logger), nil
	case text.RendererTypeText:
		if cfg.Settings.NoColor {
			color.NoColor = true
		}
		loc, err := cfg.Location()
		if err != nil {
			return nil, errors.WrapUserFacing(err, errors.CodeArgument,
				fmt.Sprintf("invalid timezone %q", cfg.Settings.Timezone), "")
		}
		return text.NewDisplay(text.NewFormatter(loc, !cfg.Settings.NoReason), logger), nil
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported output type: %s", cfg.Settings.Output), "Supported: text, json")
	}
}

func logIdentity(ctx context.Context, provider ports.PlatformProvider, logger ports.Logger) {
	account, err := provider.CallerIdentity(ctx)
	if err != nil {
		logger.Warnf(ctx, "Could not resolve %s caller identity: %v", provider.Type(), err)
		return
	}
	logger.Infof(ctx, "Using %s account %s", provider.Type(), account)
}
