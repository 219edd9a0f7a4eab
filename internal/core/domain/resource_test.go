package domain_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift/resourcekit/internal/core/domain"
	apperrors "github.com/skylift/resourcekit/internal/errors"
)

type stubFactory struct {
	client   any
	err      error
	calls    int
	services []string
}

func (f *stubFactory) ClientFor(_ context.Context, serviceName string) (domain.Client, error) {
	f.calls++
	f.services = append(f.services, serviceName)
	if f.err != nil {
		return nil, f.err
	}
	if f.client != nil {
		return f.client, nil
	}
	return serviceName + "-client", nil
}

var bucketDesc = domain.Descriptor{
	Name:        "Bucket",
	ServiceName: domain.ServiceS3,
	Identifiers: []string{"name"},
}

var objectDesc = domain.Descriptor{
	Name:        "Object",
	ServiceName: domain.ServiceS3,
	Identifiers: []string{"bucket", "key"},
}

func TestNewBindsPositionalAndNamedIdentically(t *testing.T) {
	ctx := context.Background()

	positional, err := domain.New(ctx, objectDesc, &stubFactory{}, domain.Args{
		Positional: []any{"b1", "k1"},
	})
	require.NoError(t, err)

	named, err := domain.New(ctx, objectDesc, &stubFactory{}, domain.Args{
		Named: map[string]any{"bucket": "b1", "key": "k1"},
	})
	require.NoError(t, err)

	mixed, err := domain.New(ctx, objectDesc, &stubFactory{}, domain.Args{
		Positional: []any{"b1"},
		Named:      map[string]any{"key": "k1"},
	})
	require.NoError(t, err)

	assert.True(t, positional.Equal(named))
	assert.True(t, positional.Equal(mixed))

	bucket, ok := mixed.Identifier("bucket")
	require.True(t, ok)
	assert.Equal(t, "b1", bucket)
	key, ok := mixed.Identifier("key")
	require.True(t, ok)
	assert.Equal(t, "k1", key)
}

func TestNewNamedValueOverridesPositional(t *testing.T) {
	r, err := domain.New(context.Background(), objectDesc, &stubFactory{}, domain.Args{
		Positional: []any{"b1", "ignored"},
		Named:      map[string]any{"key": "k1"},
	})
	require.NoError(t, err)

	key, _ := r.Identifier("key")
	assert.Equal(t, "k1", key)
}

func TestNewTooManyPositionalValues(t *testing.T) {
	_, err := domain.New(context.Background(), objectDesc, &stubFactory{}, domain.Args{
		Positional: []any{"b1", "k1", "k2"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeTooManyPositionalArgs))
}

func TestNewUnknownArgument(t *testing.T) {
	tests := []struct {
		name string
		args domain.Args
	}{
		{
			name: "unknown alone",
			args: domain.Args{Named: map[string]any{"region": "us-east-1"}},
		},
		{
			name: "unknown alongside valid values",
			args: domain.Args{
				Positional: []any{"photos"},
				Named:      map[string]any{"region": "us-east-1"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.New(context.Background(), bucketDesc, &stubFactory{}, tc.args)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CodeUnknownArgument))
			assert.Contains(t, err.Error(), "region")
		})
	}
}

func TestNewMissingIdentifier(t *testing.T) {
	_, err := domain.New(context.Background(), bucketDesc, &stubFactory{}, domain.Args{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeMissingIdentifier))
	assert.Contains(t, err.Error(), "name")
}

func TestNewMissingIdentifierReportsFirstUnsetInDeclaredOrder(t *testing.T) {
	desc := domain.Descriptor{
		Name:        "GrantTarget",
		ServiceName: domain.ServiceS3,
		Identifiers: []string{"bucket", "key", "version_id"},
	}

	_, err := domain.New(context.Background(), desc, &stubFactory{}, domain.Args{
		Named: map[string]any{"version_id": "v1"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeMissingIdentifier))
	assert.Contains(t, err.Error(), "'bucket'")
	assert.NotContains(t, err.Error(), "'key'")
}

func TestNewNilIdentifierValueIsMissing(t *testing.T) {
	_, err := domain.New(context.Background(), bucketDesc, &stubFactory{}, domain.Args{
		Named: map[string]any{"name": nil},
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeMissingIdentifier))
}

func TestNewUsesSuppliedClientWithoutFactoryCall(t *testing.T) {
	factory := &stubFactory{}
	supplied := &struct{ tag string }{tag: "mine"}

	r, err := domain.New(context.Background(), bucketDesc, factory, domain.Args{
		Positional: []any{"photos"},
		Named:      map[string]any{domain.ClientArg: supplied},
	})
	require.NoError(t, err)
	assert.Same(t, supplied, r.Client())
	assert.Zero(t, factory.calls)
}

func TestNewNilClientArgFallsBackToFactory(t *testing.T) {
	factory := &stubFactory{}

	r, err := domain.New(context.Background(), bucketDesc, factory, domain.Args{
		Positional: []any{"photos"},
		Named:      map[string]any{domain.ClientArg: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, factory.calls)
	assert.Equal(t, []string{domain.ServiceS3}, factory.services)
	assert.Equal(t, "s3-client", r.Client())
}

func TestNewFactoryErrorAbortsConstruction(t *testing.T) {
	factory := &stubFactory{err: fmt.Errorf("no credentials")}

	r, err := domain.New(context.Background(), bucketDesc, factory, domain.Args{
		Positional: []any{"photos"},
	})
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, apperrors.Is(err, apperrors.CodeClientFactoryError))
}

func TestEqual(t *testing.T) {
	ctx := context.Background()

	build := func(t *testing.T, desc domain.Descriptor, named map[string]any) *domain.Resource {
		t.Helper()
		r, err := domain.New(ctx, desc, &stubFactory{}, domain.Args{Named: named})
		require.NoError(t, err)
		return r
	}

	a := build(t, bucketDesc, map[string]any{"name": "photos"})
	b := build(t, bucketDesc, map[string]any{"name": "photos"})
	c := build(t, bucketDesc, map[string]any{"name": "logs"})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))

	// Swapping the client reference never affects equality.
	b.SetClient("other-client")
	assert.True(t, a.Equal(b))

	// Same identifier shape under a different variant name is never equal.
	vaultDesc := domain.Descriptor{
		Name:        "Vault",
		ServiceName: domain.ServiceS3,
		Identifiers: []string{"name"},
	}
	v := build(t, vaultDesc, map[string]any{"name": "photos"})
	assert.False(t, a.Equal(v))

	o1 := build(t, objectDesc, map[string]any{"bucket": "b1", "key": "k1"})
	o2 := build(t, objectDesc, map[string]any{"bucket": "b1", "key": "k2"})
	assert.False(t, o1.Equal(o2))
}

func TestMetadataIsolationBetweenInstances(t *testing.T) {
	ctx := context.Background()

	a, err := domain.New(ctx, bucketDesc, &stubFactory{}, domain.Args{Positional: []any{"photos"}})
	require.NoError(t, err)
	b, err := domain.New(ctx, bucketDesc, &stubFactory{}, domain.Args{Positional: []any{"photos"}})
	require.NoError(t, err)

	a.SetClient("replacement")
	a.SetData("CreationDate", "2020-01-01")

	assert.Equal(t, "s3-client", b.Client())
	assert.Empty(t, b.Data())
	assert.True(t, a.Equal(b))
}

func TestString(t *testing.T) {
	ctx := context.Background()

	bucket, err := domain.New(ctx, bucketDesc, &stubFactory{}, domain.Args{Positional: []any{"photos"}})
	require.NoError(t, err)
	assert.Equal(t, `Bucket(name="photos")`, bucket.String())

	object, err := domain.New(ctx, objectDesc, &stubFactory{}, domain.Args{Positional: []any{"b1", "k1"}})
	require.NoError(t, err)
	assert.Equal(t, `Object(bucket="b1", key="k1")`, object.String())
}

func TestIdentifiersReturnsDeclaredOrderCopy(t *testing.T) {
	r, err := domain.New(context.Background(), objectDesc, &stubFactory{}, domain.Args{
		Positional: []any{"b1", "k1"},
	})
	require.NoError(t, err)

	ids := r.Identifiers()
	assert.Empty(t, cmp.Diff([]string{"bucket", "key"}, ids))

	ids[0] = "mutated"
	assert.Empty(t, cmp.Diff([]string{"bucket", "key"}, r.Identifiers()))
}

func TestIdentityKeyAgreesWithEqual(t *testing.T) {
	ctx := context.Background()

	a, err := domain.New(ctx, objectDesc, &stubFactory{}, domain.Args{Positional: []any{"b1", "k1"}})
	require.NoError(t, err)
	b, err := domain.New(ctx, objectDesc, &stubFactory{}, domain.Args{
		Named: map[string]any{"bucket": "b1", "key": "k1"},
	})
	require.NoError(t, err)
	c, err := domain.New(ctx, objectDesc, &stubFactory{}, domain.Args{Positional: []any{"b1", "k2"}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.IdentityKey(), b.IdentityKey())
	assert.NotEqual(t, a.IdentityKey(), c.IdentityKey())
}
