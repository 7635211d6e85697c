package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	cfn "github.com/olusolaa/stack-tail/internal/adapters/platform/aws/cloudformation"
	aws_limiter "github.com/olusolaa/stack-tail/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/stack-tail/internal/adapters/platform/aws/shared"
	appconfig "github.com/olusolaa/stack-tail/internal/config"
	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

const ProviderTypeAWS = "aws"

// Provider owns the AWS clients for one run. The clients are stateless per
// call and reused across ticks.
type Provider struct {
	awsConfig aws.Config
	cfnClient cfn.CloudFormationClientInterface
	stsClient shared.STSClientInterface
	limiter   shared.RateLimiter
	logger    ports.Logger
}

type ProviderOption func(*Provider)

func WithCloudFormationClient(client cfn.CloudFormationClientInterface) ProviderOption {
	return func(p *Provider) {
		if client != nil {
			p.cfnClient = client
		}
	}
}

func WithSTSClient(client shared.STSClientInterface) ProviderOption {
	return func(p *Provider) {
		if client != nil {
			p.stsClient = client
		}
	}
}

func WithRateLimiter(limiter shared.RateLimiter) ProviderOption {
	return func(p *Provider) {
		if limiter != nil {
			p.limiter = limiter
		}
	}
}

// NewProvider resolves SDK configuration (region, profile, credentials chain)
// and builds the clients. Credentials are not fetched until the first call.
func NewProvider(ctx context.Context, cfg appconfig.AWSConfig, logger ports.Logger, opts ...ProviderOption) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for AWS Provider")
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		logger.Debugf(ctx, "AWS config: using region %s", cfg.Region)
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		logger.Debugf(ctx, "AWS config: using profile %s", cfg.Profile)
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodePlatformAuthError,
			"Failed to load AWS configuration/credentials",
			"Check --profile, --region and your AWS environment variables.")
	}
	if awsCfg.Region == "" {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			"No AWS region configured",
			"Pass --region or set AWS_REGION.")
	}

	return NewProviderFromConfig(awsCfg, cfg.MaxRPS, logger, opts...), nil
}

// NewProviderFromConfig builds a provider from an already-resolved SDK config.
func NewProviderFromConfig(awsCfg aws.Config, maxRPS int, logger ports.Logger, opts ...ProviderOption) *Provider {
	p := &Provider{
		awsConfig: awsCfg,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cfnClient == nil {
		p.cfnClient = cloudformation.NewFromConfig(awsCfg)
	}
	if p.stsClient == nil {
		p.stsClient = sts.NewFromConfig(awsCfg)
	}
	if p.limiter == nil {
		p.limiter = aws_limiter.New(maxRPS, logger)
	}
	return p
}

func (p *Provider) Type() string {
	return ProviderTypeAWS
}

func (p *Provider) Region() string {
	return p.awsConfig.Region
}

// CallerIdentity returns the account ID the credentials resolve to.
func (p *Provider) CallerIdentity(ctx context.Context) (string, error) {
	if err := p.limiter.Wait(ctx, p.logger); err != nil {
		return "", err
	}
	out, err := p.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", errors.Wrap(err, errors.CodePlatformAPIError, "failed to get AWS caller identity")
	}
	if out.Account == nil {
		return "", errors.New(errors.CodePlatformAPIError, "AWS caller identity response did not contain Account ID")
	}
	return aws.ToString(out.Account), nil
}

// Sources returns both source variants for stackName, sharing this
// provider's client and limiter.
func (p *Provider) Sources(stackName string) []ports.Source {
	opts := []cfn.SourceOption{cfn.WithRateLimiter(p.limiter)}
	logger := p.logger.WithFields(map[string]any{"stack": stackName, "region": p.awsConfig.Region})
	return []ports.Source{
		cfn.NewEventSource(p.cfnClient, stackName, logger.WithFields(map[string]any{"source": domain.SourceKindEvents}), opts...),
		cfn.NewResourceSource(p.cfnClient, stackName, logger.WithFields(map[string]any{"source": domain.SourceKindResources}), opts...),
	}
}

func (p *Provider) String() string {
	return fmt.Sprintf("%s(%s)", ProviderTypeAWS, p.awsConfig.Region)
}
