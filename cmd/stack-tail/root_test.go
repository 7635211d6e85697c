package main

import (
	"bytes"
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/stack-tail/internal/app"
	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports/mocks"
	apperrors "github.com/olusolaa/stack-tail/internal/errors"
)

type emptyEngine struct{}

func (emptyEngine) Ticks(context.Context) iter.Seq2[domain.Tick, error] {
	return func(func(domain.Tick, error) bool) {}
}

type recordingBuild struct {
	calls int
	v     *viper.Viper
	err   error
	t     *testing.T
}

func (b *recordingBuild) build(_ context.Context, v *viper.Viper) (*app.Application, error) {
	b.calls++
	b.v = v
	if b.err != nil {
		return nil, b.err
	}
	return app.NewApplication(emptyEngine{}, mocks.NewRenderer(b.t), mocks.NewQuietLogger(b.t)), nil
}

func runRoot(t *testing.T, b *recordingBuild, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd(viper.New(), b.build)
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := execute(context.Background(), cmd)
	return stderr.String(), err
}

func TestRootCmd_Flags(t *testing.T) {
	b := &recordingBuild{t: t}

	_, err := runRoot(t, b, "demo", "-r", "-f", "-t", "Europe/London", "--interval", "2s", "--region", "eu-west-1", "--output", "json")

	require.NoError(t, err)
	require.Equal(t, 1, b.calls)
	assert.Equal(t, "demo", b.v.GetString(app.KeyStackName))
	assert.True(t, b.v.GetBool(app.KeyResources))
	assert.True(t, b.v.GetBool(app.KeyFollow))
	assert.Equal(t, "Europe/London", b.v.GetString(app.KeyTimezone))
	assert.Equal(t, 2*time.Second, b.v.GetDuration("settings.poll_interval"))
	assert.Equal(t, "eu-west-1", b.v.GetString("aws.region"))

	cfg, err := app.LoadConfig(context.Background(), b.v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Settings.Output)
	assert.Equal(t, 2*time.Second, cfg.Settings.PollInterval)
}

func TestRootCmd_Defaults(t *testing.T) {
	b := &recordingBuild{t: t}

	_, err := runRoot(t, b, "demo")
	require.NoError(t, err)

	cfg, err := app.LoadConfig(context.Background(), b.v)
	require.NoError(t, err)
	assert.False(t, cfg.Tail.Follow)
	assert.False(t, cfg.Tail.Resources)
	assert.Equal(t, time.Second, cfg.Settings.PollInterval)
	assert.Empty(t, cfg.Settings.Timezone)
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	tests := map[string][]string{
		"missing stack name": {},
		"extra argument":     {"one", "two"},
		"invalid timezone":   {"demo", "--timezone", "Nowhere/Special"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			b := &recordingBuild{t: t}

			out, err := runRoot(t, b, args...)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CodeArgument))
			assert.Equal(t, 0, b.calls)
			assert.Contains(t, out, "Usage:")
			assert.Contains(t, out, "ERROR:")
		})
	}
}

func TestRootCmd_BuildError(t *testing.T) {
	b := &recordingBuild{t: t, err: apperrors.NewUserFacing(apperrors.CodeStackNotFound, "Stack 'demo' does not exist", "Check the stack name and region.")}

	out, err := runRoot(t, b, "demo")

	require.Error(t, err)
	assert.Contains(t, out, "ERROR: Stack 'demo' does not exist")
	assert.Contains(t, out, "Suggestion: Check the stack name and region.")
	assert.NotContains(t, out, "Usage:")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tail.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aws:\n  region: ap-southeast-2\n  max_rps: 2\nsettings:\n  no_reason: true\n"), 0o600))
	b := &recordingBuild{t: t}

	_, err := runRoot(t, b, "demo", "--config", path)
	require.NoError(t, err)

	cfg, err := app.LoadConfig(context.Background(), b.v)
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.AWS.Region)
	assert.Equal(t, 2, cfg.AWS.MaxRPS)
	assert.True(t, cfg.Settings.NoReason)
}

func TestRootCmd_EnvOverride(t *testing.T) {
	t.Setenv("STACKTAIL_AWS_PROFILE", "staging")
	t.Setenv("STACKTAIL_AWS_MAX_RPS", "9")
	b := &recordingBuild{t: t}

	_, err := runRoot(t, b, "demo")
	require.NoError(t, err)

	cfg, err := app.LoadConfig(context.Background(), b.v)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.AWS.Profile)
	assert.Equal(t, 9, cfg.AWS.MaxRPS)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	b := &recordingBuild{t: t}

	_, err := runRoot(t, b, "demo", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigReadError))
	assert.Equal(t, 0, b.calls)
}
