package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/emilythestrangee/qa-forum/backend/internal/config"
)

func TestSetupDisabled(t *testing.T) {
	tel, err := Setup(context.Background(), config.OTelConfig{ServiceName: "qa-forum"}, "generic")
	require.NoError(t, err)
	assert.Nil(t, tel)
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetupEnabled(t *testing.T) {
	tel, err := Setup(context.Background(), config.OTelConfig{
		Endpoint:    "http://127.0.0.1:4318",
		ServiceName: "qa-forum",
	}, "generic")
	require.NoError(t, err)
	require.NotNil(t, tel)
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestResourceKeepsDefaultSchema(t *testing.T) {
	res, err := newResource("qa-forum", "immigration")
	require.NoError(t, err)

	assert.Equal(t, resource.Default().SchemaURL(), res.SchemaURL())

	name, ok := res.Set().Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, "qa-forum", name.AsString())

	variant, ok := res.Set().Value(attribute.Key("qa.variant"))
	require.True(t, ok)
	assert.Equal(t, "immigration", variant.AsString())
}
