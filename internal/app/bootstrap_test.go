package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/stack-tail/internal/app"
	"github.com/olusolaa/stack-tail/internal/config"
	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/core/ports/mocks"
	apperrors "github.com/olusolaa/stack-tail/internal/errors"
	"github.com/olusolaa/stack-tail/internal/log"
	jsonrenderer "github.com/olusolaa/stack-tail/internal/reporting/json"
	"github.com/olusolaa/stack-tail/internal/reporting/text"
)

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults with stack name", func(t *testing.T) {
		v := viper.New()
		v.Set("tail.stack_name", "demo")

		cfg, err := app.LoadConfig(ctx, v)

		require.NoError(t, err)
		assert.Equal(t, "demo", cfg.Tail.StackName)
		assert.Equal(t, log.LevelWarn, cfg.Settings.LogLevel)
		assert.Equal(t, config.OutputText, cfg.Settings.Output)
		assert.Equal(t, time.Second, cfg.Settings.PollInterval)
		assert.Equal(t, 5, cfg.AWS.MaxRPS)
	})

	t.Run("decodes durations and enum case", func(t *testing.T) {
		v := viper.New()
		v.Set("tail.stack_name", "demo")
		v.Set("settings.poll_interval", "250ms")
		v.Set("settings.log_level", "DEBUG")
		v.Set("aws.region", "eu-west-1")

		cfg, err := app.LoadConfig(ctx, v)

		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, cfg.Settings.PollInterval)
		assert.Equal(t, log.LevelDebug, cfg.Settings.LogLevel)
		assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := map[string]map[string]any{
			"missing stack name": {},
			"bad output":         {"tail.stack_name": "demo", "settings.output": "yaml"},
			"interval too small": {"tail.stack_name": "demo", "settings.poll_interval": "10ms"},
			"bad timezone":       {"tail.stack_name": "demo", "settings.timezone": "Mars/Olympus"},
		}
		for name, values := range tests {
			t.Run(name, func(t *testing.T) {
				v := viper.New()
				for k, val := range values {
					v.Set(k, val)
				}

				_, err := app.LoadConfig(ctx, v)

				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
				_, _, userFacing := apperrors.GetUserFacingMessage(err)
				assert.True(t, userFacing)
			})
		}
	})

	t.Run("unparseable duration", func(t *testing.T) {
		v := viper.New()
		v.Set("tail.stack_name", "demo")
		v.Set("settings.poll_interval", "soon")

		_, err := app.LoadConfig(ctx, v)

		assert.True(t, apperrors.Is(err, apperrors.CodeConfigParseError))
	})
}

func newProvider(t *testing.T, events, resources *mocks.Source) *mocks.PlatformProvider {
	provider := mocks.NewPlatformProvider(t)
	events.On("Kind").Return(domain.SourceKindEvents)
	resources.On("Kind").Return(domain.SourceKindResources)
	provider.On("Sources", "demo").Return([]ports.Source{events, resources}).Once()
	provider.On("Type").Maybe().Return("aws")
	return provider
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Tail.StackName = "demo"
	cfg.Settings.NoColor = true
	return cfg
}

func TestBuildApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("events with text output", func(t *testing.T) {
		events, resources := mocks.NewSource(t), mocks.NewSource(t)
		provider := newProvider(t, events, resources)

		application, err := app.BuildApplication(ctx, testConfig(), provider, mocks.NewQuietLogger(t))

		require.NoError(t, err)
		assert.IsType(t, &text.Display{}, application.Renderer)
		assert.NotNil(t, application.Engine)
		provider.AssertNotCalled(t, "CallerIdentity", mock.Anything)
	})

	t.Run("resources are fetched when selected", func(t *testing.T) {
		events, resources := mocks.NewSource(t), mocks.NewSource(t)
		provider := newProvider(t, events, resources)
		cfg := testConfig()
		cfg.Tail.Resources = true

		batch := []domain.StatusRecord{{ResourceType: "AWS::S3::Bucket", Status: "CREATE_COMPLETE", ResourceID: "Bucket"}}
		resources.On("Fetch", mock.Anything).Return(batch, nil).Once()
		resources.On("IsDone", batch, false).Return(true).Once()

		application, err := app.BuildApplication(ctx, cfg, provider, mocks.NewQuietLogger(t))
		require.NoError(t, err)

		for _, err := range application.Engine.Ticks(ctx) {
			require.NoError(t, err)
		}
		events.AssertNotCalled(t, "Fetch", mock.Anything)
	})

	t.Run("json output", func(t *testing.T) {
		events, resources := mocks.NewSource(t), mocks.NewSource(t)
		provider := newProvider(t, events, resources)
		cfg := testConfig()
		cfg.Settings.Output = config.OutputJSON

		application, err := app.BuildApplication(ctx, cfg, provider, mocks.NewQuietLogger(t))

		require.NoError(t, err)
		assert.IsType(t, &jsonrenderer.Renderer{}, application.Renderer)
	})

	t.Run("logs caller identity at info level", func(t *testing.T) {
		events, resources := mocks.NewSource(t), mocks.NewSource(t)
		provider := newProvider(t, events, resources)
		provider.On("CallerIdentity", mock.Anything).Return("111122223333", nil).Once()
		cfg := testConfig()
		cfg.Settings.LogLevel = log.LevelInfo

		_, err := app.BuildApplication(ctx, cfg, provider, mocks.NewQuietLogger(t))
		assert.NoError(t, err)
	})

	t.Run("identity failure is not fatal", func(t *testing.T) {
		events, resources := mocks.NewSource(t), mocks.NewSource(t)
		provider := newProvider(t, events, resources)
		provider.On("CallerIdentity", mock.Anything).Return("", errors.New("no credentials")).Once()
		cfg := testConfig()
		cfg.Settings.LogLevel = log.LevelDebug

		_, err := app.BuildApplication(ctx, cfg, provider, mocks.NewQuietLogger(t))
		assert.NoError(t, err)
	})

	t.Run("duplicate source kinds", func(t *testing.T) {
		first, second := mocks.NewSource(t), mocks.NewSource(t)
		first.On("Kind").Return(domain.SourceKindEvents)
		second.On("Kind").Return(domain.SourceKindEvents)
		provider := mocks.NewPlatformProvider(t)
		provider.On("Sources", "demo").Return([]ports.Source{first, second}).Once()

		_, err := app.BuildApplication(ctx, testConfig(), provider, mocks.NewQuietLogger(t))
		assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
	})
}
