package app

import (
	"context"

	"github.com/skylift/resourcekit/internal/adapters/platform/aws"
	"github.com/skylift/resourcekit/internal/config"
	"github.com/skylift/resourcekit/internal/core/domain"
	"github.com/skylift/resourcekit/internal/core/ports"
	"github.com/skylift/resourcekit/internal/core/service"
)

// Application holds the wired object layer: the descriptor registry, the
// default-client factory, and the configured reporter.
type Application struct {
	Config   *config.Config
	Logger   ports.Logger
	Registry *service.DescriptorRegistry
	Factory  *aws.Factory
	Reporter ports.Reporter
}

// BuildResource constructs an instance of a registered variant from
// positional and named values.
func (a *Application) BuildResource(ctx context.Context, variantName string, positional []any, named map[string]any) (*domain.Resource, error) {
	variant, err := a.Registry.Variant(variantName, a.Factory)
	if err != nil {
		return nil, err
	}

	resource, err := variant.NewArgs(ctx, domain.Args{Positional: positional, Named: named})
	if err != nil {
		a.Logger.Errorf(ctx, err, "Failed to construct resource '%s'", variantName)
		return nil, err
	}

	a.Logger.Debugf(ctx, "Constructed resource %s", resource)
	return resource, nil
}

// Report renders the given resources with the configured reporter.
func (a *Application) Report(ctx context.Context, resources ...*domain.Resource) error {
	return a.Reporter.Report(ctx, resources)
}
