package service

import (
	"context"

	"github.com/skylift/resourcekit/internal/core/domain"
)

// Variant binds a registered descriptor to a default-client factory,
// giving callers the equivalent of a concrete resource type: construction
// without re-stating metadata on every call.
type Variant struct {
	desc    domain.Descriptor
	factory domain.ClientFactory
}

func (r *DescriptorRegistry) Variant(name string, factory domain.ClientFactory) (*Variant, error) {
	desc, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return &Variant{desc: desc, factory: factory}, nil
}

func (v *Variant) Descriptor() domain.Descriptor { return v.desc }

// New constructs an instance from positional identifier values only.
func (v *Variant) New(ctx context.Context, positional ...any) (*domain.Resource, error) {
	return domain.New(ctx, v.desc, v.factory, domain.Args{Positional: positional})
}

// NewNamed constructs an instance from named values; the reserved
// "client" key routes a caller-supplied client.
func (v *Variant) NewNamed(ctx context.Context, named map[string]any) (*domain.Resource, error) {
	return domain.New(ctx, v.desc, v.factory, domain.Args{Named: named})
}

// NewArgs constructs an instance from mixed positional and named values.
func (v *Variant) NewArgs(ctx context.Context, args domain.Args) (*domain.Resource, error) {
	return domain.New(ctx, v.desc, v.factory, args)
}
