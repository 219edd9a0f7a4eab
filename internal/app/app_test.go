package app_test

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift/resourcekit/internal/app"
	apperrors "github.com/skylift/resourcekit/internal/errors"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	// Pin the region so bootstrap never falls through to instance
	// metadata lookups.
	v.Set("aws.region", "us-east-1")
	v.Set("settings.log_level", "error")
	return v
}

func TestBuildApplicationFromViper(t *testing.T) {
	application, err := app.BuildApplicationFromViper(context.Background(), newTestViper())
	require.NoError(t, err)

	assert.NotNil(t, application.Registry)
	assert.NotNil(t, application.Factory)
	assert.NotNil(t, application.Reporter)
	assert.Equal(t, "us-east-1", application.Factory.Region())

	assert.Contains(t, application.Registry.Names(), "Bucket")
	assert.Contains(t, application.Registry.Names(), "Instance")
}

func TestBuildApplicationRegistersConfiguredVariants(t *testing.T) {
	v := newTestViper()
	v.Set("variants", []map[string]any{
		{"name": "Queue", "service": "sts", "identifiers": []string{"url"}},
	})

	application, err := app.BuildApplicationFromViper(context.Background(), v)
	require.NoError(t, err)

	desc, err := application.Registry.Get("Queue")
	require.NoError(t, err)
	assert.Equal(t, []string{"url"}, desc.Identifiers)
}

func TestBuildApplicationRejectsInvalidReporter(t *testing.T) {
	v := newTestViper()
	v.Set("settings.reporter", "xml")

	_, err := app.BuildApplicationFromViper(context.Background(), v)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
}

func TestBuildResource(t *testing.T) {
	ctx := context.Background()
	application, err := app.BuildApplicationFromViper(ctx, newTestViper())
	require.NoError(t, err)

	resource, err := application.BuildResource(ctx, "Bucket", []any{"photos"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `Bucket(name="photos")`, resource.String())
	assert.NotNil(t, resource.Client())

	_, err = application.BuildResource(ctx, "Phantom", []any{"x"}, nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeVariantNotFound))
}

func TestParseNamedArgs(t *testing.T) {
	named, err := app.ParseNamedArgs([]string{"bucket_name=b1", "key=some=key"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"bucket_name": "b1", "key": "some=key"}, named)

	named, err = app.ParseNamedArgs(nil)
	require.NoError(t, err)
	assert.Nil(t, named)

	_, err = app.ParseNamedArgs([]string{"missing-separator"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))

	_, err = app.ParseNamedArgs([]string{"=value"})
	require.Error(t, err)
}
