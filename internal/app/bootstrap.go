package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/skylift/resourcekit/internal/adapters/platform/aws"
	"github.com/skylift/resourcekit/internal/adapters/platform/aws/limiter"
	"github.com/skylift/resourcekit/internal/config"
	"github.com/skylift/resourcekit/internal/core/ports"
	"github.com/skylift/resourcekit/internal/core/service"
	"github.com/skylift/resourcekit/internal/errors"
	"github.com/skylift/resourcekit/internal/log"
	jsonreport "github.com/skylift/resourcekit/internal/reporting/json"
	"github.com/skylift/resourcekit/internal/reporting/text"
)

// BuildApplicationFromViper wires the full object layer: config, logger,
// descriptor registry with built-in and config-declared variants, the AWS
// default-client factory, and the configured reporter.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	logCfg := log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat}
	logger, err := log.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize logger: %v\n", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(ctx, cfg); err != nil {
		var details strings.Builder
		details.WriteString("Configuration validation failed:")
		for _, fe := range err.(validator.ValidationErrors) {
			details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		wrappedErr := errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Please check your configuration file or flags.")
		logger.Errorf(ctx, wrappedErr, "Configuration validation failed")
		return nil, wrappedErr
	}

	registry := service.NewDescriptorRegistry()
	if err := service.RegisterBuiltins(registry); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to register built-in resource variants")
	}
	for _, vc := range cfg.Variants {
		if err := registry.Register(vc.Descriptor()); err != nil {
			return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
				fmt.Sprintf("invalid resource variant '%s' in configuration", vc.Name),
				"Check the 'variants' section of your configuration file.")
		}
		logger.Debugf(ctx, "Registered resource variant '%s' from configuration", vc.Name)
	}

	rps := 0
	if cfg.AWS != nil {
		rps = cfg.AWS.APIRateLimitRPS
	}
	limiter.Initialize(rps, logger)

	var factoryOpts []aws.FactoryOption
	if cfg.AWS != nil {
		if cfg.AWS.Region != "" {
			factoryOpts = append(factoryOpts, aws.WithRegion(cfg.AWS.Region))
		}
		if cfg.AWS.Profile != "" {
			factoryOpts = append(factoryOpts, aws.WithProfile(cfg.AWS.Profile))
		}
	}
	factory, err := aws.NewFactory(ctx, logger.WithFields(map[string]any{"component": "client_factory"}), factoryOpts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigValidation, "failed to initialize AWS client factory")
	}
	logger.Debugf(ctx, "AWS client factory initialized (region: %s)", factory.Region())

	reporter, err := buildReporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return &Application{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Factory:  factory,
		Reporter: reporter,
	}, nil
}

func buildReporter(cfg *config.Config, logger ports.Logger) (ports.Reporter, error) {
	switch cfg.Settings.ReporterType {
	case text.ReporterTypeText, "":
		textCfg := text.Config{}
		if cfg.Settings.Reporter.Text != nil {
			textCfg = *cfg.Settings.Reporter.Text
		}
		reporter, err := text.NewReporter(textCfg, logger.WithFields(map[string]any{"component": "reporter", "type": text.ReporterTypeText}))
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize text reporter")
		}
		return reporter, nil
	case jsonreport.ReporterTypeJSON:
		reporter, err := jsonreport.NewReporter(jsonreport.Config{}, logger.WithFields(map[string]any{"component": "reporter", "type": jsonreport.ReporterTypeJSON}))
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize JSON reporter")
		}
		return reporter, nil
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", cfg.Settings.ReporterType), "Supported: text, json")
	}
}
