package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"golang.org/x/sync/errgroup"

	awserrors "github.com/skylift/resourcekit/internal/adapters/platform/aws/errors"
	"github.com/skylift/resourcekit/internal/adapters/platform/aws/limiter"
	"github.com/skylift/resourcekit/internal/core/domain"
	"github.com/skylift/resourcekit/internal/core/ports"
	apperrors "github.com/skylift/resourcekit/internal/errors"
)

const ProviderTypeAWS = "aws"

// Factory is the default-client factory for AWS-backed resource variants.
// It resolves one shared aws.Config at construction time and hands out
// per-service clients, cached so every resource of the same service
// shares the same underlying client. Safe for concurrent use.
type Factory struct {
	awsConfig aws.Config
	logger    ports.Logger

	mu      sync.RWMutex
	clients map[string]domain.Client

	idMu     sync.Mutex
	identity *CallerIdentity
}

// CallerIdentity describes the principal the factory's credentials
// resolve to.
type CallerIdentity struct {
	Account string
	ARN     string
	UserID  string
}

type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	cfg     *aws.Config
	region  string
	profile string
}

// WithConfig supplies a pre-built aws.Config, skipping the default
// credential chain. Used by tests and embedders that already hold one.
func WithConfig(cfg aws.Config) FactoryOption {
	return func(o *factoryOptions) { o.cfg = &cfg }
}

func WithRegion(region string) FactoryOption {
	return func(o *factoryOptions) { o.region = region }
}

func WithProfile(profile string) FactoryOption {
	return func(o *factoryOptions) { o.profile = profile }
}

func NewFactory(ctx context.Context, logger ports.Logger, opts ...FactoryOption) (*Factory, error) {
	if logger == nil {
		return nil, apperrors.New(apperrors.CodeConfigValidation, "logger cannot be nil for AWS client factory")
	}

	var o factoryOptions
	for _, opt := range opts {
		opt(&o)
	}

	var cfg aws.Config
	if o.cfg != nil {
		cfg = *o.cfg
	} else {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if o.region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(o.region))
		}
		if o.profile != "" {
			loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(o.profile))
		}
		loaded, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeConfigValidation, "failed to load default AWS config")
		}
		cfg = loaded
	}

	return &Factory{
		awsConfig: cfg,
		logger:    logger,
		clients:   make(map[string]domain.Client),
	}, nil
}

func (f *Factory) Type() string { return ProviderTypeAWS }

func (f *Factory) Region() string { return f.awsConfig.Region }

// SupportedServices returns the service names ClientFor can resolve.
func (f *Factory) SupportedServices() []string {
	return []string{domain.ServiceEC2, domain.ServiceS3, domain.ServiceSTS}
}

// ClientFor implements domain.ClientFactory. The first request for a
// service builds its client from the shared config; later requests reuse
// it.
func (f *Factory) ClientFor(ctx context.Context, serviceName string) (domain.Client, error) {
	f.mu.RLock()
	client, cached := f.clients[serviceName]
	f.mu.RUnlock()
	if cached {
		return client, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if client, cached = f.clients[serviceName]; cached {
		return client, nil
	}

	switch serviceName {
	case domain.ServiceS3:
		client = s3.NewFromConfig(f.awsConfig)
	case domain.ServiceEC2:
		client = ec2.NewFromConfig(f.awsConfig)
	case domain.ServiceSTS:
		client = sts.NewFromConfig(f.awsConfig)
	default:
		return nil, apperrors.New(apperrors.CodeServiceNotSupported,
			fmt.Sprintf("service '%s' is not supported by the AWS client factory", serviceName))
	}

	f.clients[serviceName] = client
	f.logger.Debugf(ctx, "Created default %s client (region: %s)", serviceName, f.awsConfig.Region)
	return client, nil
}

// Warm builds the clients for the given services concurrently so the
// first resource constructions don't pay the setup cost.
func (f *Factory) Warm(ctx context.Context, serviceNames ...string) error {
	g, childCtx := errgroup.WithContext(ctx)
	for _, name := range serviceNames {
		name := name
		g.Go(func() error {
			_, err := f.ClientFor(childCtx, name)
			return err
		})
	}
	return g.Wait()
}

// CallerIdentity resolves which account and principal the factory's
// credentials belong to, via STS. The result is cached; the call is
// guarded by the shared API rate limiter.
func (f *Factory) CallerIdentity(ctx context.Context) (CallerIdentity, error) {
	f.idMu.Lock()
	defer f.idMu.Unlock()
	if f.identity != nil {
		return *f.identity, nil
	}

	client, err := f.ClientFor(ctx, domain.ServiceSTS)
	if err != nil {
		return CallerIdentity{}, err
	}
	stsClient, ok := client.(*sts.Client)
	if !ok {
		return CallerIdentity{}, apperrors.New(apperrors.CodeInternal, "STS client has unexpected type")
	}

	if err := limiter.Wait(ctx, f.logger); err != nil {
		return CallerIdentity{}, err
	}
	out, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return CallerIdentity{}, awserrors.HandleAWSError("STS", "GetCallerIdentity", err, ctx)
	}

	identity := CallerIdentity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}
	f.identity = &identity
	return identity, nil
}
