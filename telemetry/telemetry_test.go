package telemetry

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestTelemetryDisabled(t *testing.T) {
	tel := NewTelemetry(TelemetryConfig{}, hclog.NewNullLogger())

	require.False(t, tel.IsEnabled())
	// no sinks, no servers, no profilers
	require.NoError(t, tel.Start())
	require.NoError(t, tel.Close(context.Background()))
}

func TestTelemetryIsEnabled(t *testing.T) {
	require.True(t, NewTelemetry(TelemetryConfig{PrometheusAddr: "0.0.0.0:5001"}, hclog.NewNullLogger()).IsEnabled())
	require.True(t, NewTelemetry(TelemetryConfig{DataDogAddr: "localhost:8126"}, hclog.NewNullLogger()).IsEnabled())
}
