package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/olusolaa/stack-tail/internal/errors"
)

const (
	KeyStackName = "tail.stack_name"
	KeyResources = "tail.resources"
	KeyFollow    = "tail.follow"
	KeyTimezone  = "settings.timezone"
)

// ApplyStackArg stores the positional stack name. Blank names are rejected
// here so they surface as argument errors rather than config errors.
func ApplyStackArg(v *viper.Viper, args []string) error {
	if len(args) != 1 {
		return errors.NewUserFacing(errors.CodeArgument,
			fmt.Sprintf("expected exactly one stack name, got %d", len(args)),
			"Usage: stack-tail [flags] <stack_name>")
	}
	name := strings.TrimSpace(args[0])
	if name == "" {
		return errors.NewUserFacing(errors.CodeArgument, "stack name cannot be empty",
			"Usage: stack-tail [flags] <stack_name>")
	}
	v.Set(KeyStackName, name)
	return nil
}

// ValidateTimezone checks an IANA zone name before any network call is made.
func ValidateTimezone(name string) error {
	if name == "" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return errors.WrapUserFacing(err, errors.CodeArgument,
			fmt.Sprintf("invalid timezone %q", name),
			"Use an IANA timezone name such as 'America/New_York' or 'UTC'.")
	}
	return nil
}
