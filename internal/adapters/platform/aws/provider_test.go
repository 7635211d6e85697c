package aws

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sharedmocks "github.com/olusolaa/stack-tail/internal/adapters/platform/aws/shared/mocks"
	appconfig "github.com/olusolaa/stack-tail/internal/config"
	"github.com/olusolaa/stack-tail/internal/core/domain"
	portsmocks "github.com/olusolaa/stack-tail/internal/core/ports/mocks"
	internalerrors "github.com/olusolaa/stack-tail/internal/errors"
	"github.com/olusolaa/stack-tail/mocks"
)

func setupProviderTest(t *testing.T) (*Provider, *mocks.MockCloudFormationClient, *mocks.MockSTSClient, *sharedmocks.RateLimiter) {
	cfnClient := new(mocks.MockCloudFormationClient)
	stsClient := new(mocks.MockSTSClient)
	limiter := sharedmocks.NewRateLimiter(t)
	limiter.On("Wait", mock.Anything, mock.Anything).Maybe().Return(nil)

	provider := NewProviderFromConfig(aws.Config{Region: "us-east-1"}, 0, portsmocks.NewQuietLogger(t),
		WithCloudFormationClient(cfnClient),
		WithSTSClient(stsClient),
		WithRateLimiter(limiter),
	)
	require.NotNil(t, provider)
	return provider, cfnClient, stsClient, limiter
}

func isolateAWSEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("region from config", func(t *testing.T) {
		isolateAWSEnv(t)

		provider, err := NewProvider(ctx, appconfig.AWSConfig{Region: "us-west-2"}, portsmocks.NewQuietLogger(t))

		require.NoError(t, err)
		assert.Equal(t, "us-west-2", provider.Region())
		assert.Equal(t, ProviderTypeAWS, provider.Type())
	})

	t.Run("region from environment", func(t *testing.T) {
		isolateAWSEnv(t)
		t.Setenv("AWS_REGION", "eu-central-1")

		provider, err := NewProvider(ctx, appconfig.AWSConfig{}, portsmocks.NewQuietLogger(t))

		require.NoError(t, err)
		assert.Equal(t, "eu-central-1", provider.Region())
	})

	t.Run("missing profile", func(t *testing.T) {
		isolateAWSEnv(t)

		provider, err := NewProvider(ctx, appconfig.AWSConfig{Region: "us-west-2", Profile: "does-not-exist"}, portsmocks.NewQuietLogger(t))

		require.Error(t, err)
		assert.Nil(t, provider)
		var appErr *internalerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, internalerrors.CodePlatformAuthError, appErr.Code)
		assert.True(t, appErr.IsUserFacing)
	})

	t.Run("no region anywhere", func(t *testing.T) {
		isolateAWSEnv(t)

		provider, err := NewProvider(ctx, appconfig.AWSConfig{}, portsmocks.NewQuietLogger(t))

		require.Error(t, err)
		assert.Nil(t, provider)
		assert.True(t, internalerrors.Is(err, internalerrors.CodeConfigValidation))
	})

	t.Run("nil logger", func(t *testing.T) {
		provider, err := NewProvider(ctx, appconfig.AWSConfig{}, nil)
		require.Error(t, err)
		assert.Nil(t, provider)
		assert.Contains(t, err.Error(), "logger cannot be nil")
	})
}

func TestProviderCallerIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		provider, _, stsClient, _ := setupProviderTest(t)
		stsClient.On("GetCallerIdentity", mock.Anything, mock.Anything).
			Return(&sts.GetCallerIdentityOutput{Account: aws.String("111122223333")}, nil).Once()

		account, err := provider.CallerIdentity(ctx)

		require.NoError(t, err)
		assert.Equal(t, "111122223333", account)
		stsClient.AssertExpectations(t)
	})

	t.Run("sts error", func(t *testing.T) {
		provider, _, stsClient, _ := setupProviderTest(t)
		stsErr := fmt.Errorf("ExpiredToken")
		stsClient.On("GetCallerIdentity", mock.Anything, mock.Anything).Return(nil, stsErr).Once()

		_, err := provider.CallerIdentity(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, stsErr)
		assert.True(t, internalerrors.Is(err, internalerrors.CodePlatformAPIError))
	})

	t.Run("missing account", func(t *testing.T) {
		provider, _, stsClient, _ := setupProviderTest(t)
		stsClient.On("GetCallerIdentity", mock.Anything, mock.Anything).Return(&sts.GetCallerIdentityOutput{}, nil).Once()

		_, err := provider.CallerIdentity(ctx)

		assert.True(t, internalerrors.Is(err, internalerrors.CodePlatformAPIError))
	})
}

func TestProviderSources(t *testing.T) {
	provider, cfnClient, _, limiter := setupProviderTest(t)

	sources := provider.Sources("demo")
	require.Len(t, sources, 2)
	assert.Equal(t, domain.SourceKindEvents, sources[0].Kind())
	assert.Equal(t, domain.SourceKindResources, sources[1].Kind())

	cfnClient.On("DescribeStackResources", mock.Anything, mock.MatchedBy(func(in *cloudformation.DescribeStackResourcesInput) bool {
		return aws.ToString(in.StackName) == "demo"
	})).Return(&cloudformation.DescribeStackResourcesOutput{
		StackResources: []cftypes.StackResource{},
	}, nil).Once()

	records, err := sources[1].Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	limiter.AssertCalled(t, "Wait", mock.Anything, mock.Anything)
	cfnClient.AssertExpectations(t)
}
