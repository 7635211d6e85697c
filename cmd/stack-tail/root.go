package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/stack-tail/internal/app"
	"github.com/olusolaa/stack-tail/internal/config"
	apperrors "github.com/olusolaa/stack-tail/internal/errors"
)

const (
	envPrefix      = "STACKTAIL"
	configFileName = ".stack-tail"
)

type buildFunc func(ctx context.Context, v *viper.Viper) (*app.Application, error)

func newRootCmd(v *viper.Viper, build buildFunc) *cobra.Command {
	var cfgFile string
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "stack-tail [flags] <stack_name>",
		Short: "Tails the events or resources of an AWS CloudFormation stack.",
		Long: `stack-tail polls AWS CloudFormation for a stack's events (or, with --resources,
its current resources) and prints them as a table. With --follow the table is
repainted in place until the stack reaches a terminal state.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return app.ApplyStackArg(v, args)
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(v, cfgFile)
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return app.ValidateTimezone(v.GetString(app.KeyTimezone))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			application, err := build(cmd.Context(), v)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .stack-tail.yaml in . or $HOME)")
	flags.BoolP("resources", "r", false, "Show the stack's current resources instead of its events")
	flags.BoolP("follow", "f", false, "Keep polling until the stack reaches a terminal state")
	flags.StringP("timezone", "t", "", "IANA timezone used to print timestamps (e.g. America/New_York)")
	flags.String("log-level", string(defaults.Settings.LogLevel), "Log level (debug, info, warn, error)")
	flags.String("log-format", string(defaults.Settings.LogFormat), "Log format (text, json)")
	flags.String("output", defaults.Settings.Output, "Output format (text, json)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("no-reason", false, "Hide the status reason column")
	flags.Duration("interval", defaults.Settings.PollInterval, "Delay between polls in follow mode")
	flags.String("region", "", "AWS region (defaults to the SDK resolution chain)")
	flags.String("profile", "", "AWS shared config profile")

	bindings := map[string]string{
		app.KeyResources:         "resources",
		app.KeyFollow:            "follow",
		app.KeyTimezone:          "timezone",
		"settings.log_level":     "log-level",
		"settings.log_format":    "log-format",
		"settings.output":        "output",
		"settings.no_color":      "no-color",
		"settings.no_reason":     "no-reason",
		"settings.poll_interval": "interval",
		"aws.region":             "region",
		"aws.profile":            "profile",
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, flag := range bindings {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}
	cobra.CheckErr(v.BindEnv("aws.max_rps"))

	return cmd
}

func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError, "failed to read config file",
			"Check that the file passed to --config exists and is valid YAML.")
	}
	return nil
}

// execute runs cmd and reports any error once on stderr.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		printError(cmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	userMsg, suggestion, userFacing := apperrors.GetUserFacingMessage(err)
	if !userFacing && apperrors.GetCode(err) == apperrors.CodeUnknown {
		// cobra flag parsing errors are plain errors
		userMsg = err.Error()
		suggestion = "Run 'stack-tail --help' for usage."
	}
	fmt.Fprintf(w, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", suggestion)
	}
}
