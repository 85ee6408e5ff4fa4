package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build()
	require.NoError(t, err, "defaults must be valid")

	require.Equal(t, 3000, cfg.HTTPCfg.Port)
	require.True(t, cfg.HTTPCfg.SwaggerEnabled)
	require.True(t, cfg.GrpcCfg.Enabled)
	require.Equal(t, 3010, cfg.GrpcCfg.Port)
	require.Equal(t, "info", cfg.LogCfg.Level)
	require.Equal(t, "text", cfg.LogCfg.Format)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestBuildFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("HTTP_SWAGGER_ENABLED", "false")
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Build()
	require.NoError(t, err, "failed to build config")

	require.Equal(t, 8080, cfg.HTTPCfg.Port)
	require.False(t, cfg.HTTPCfg.SwaggerEnabled)
	require.Equal(t, 9090, cfg.GrpcCfg.Port)
	require.Equal(t, "debug", cfg.LogCfg.Level)
	require.Equal(t, "json", cfg.LogCfg.Format)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestBuildInvalid(t *testing.T) {
	t.Log("malformed port")
	{
		t.Setenv("HTTP_PORT", "not-a-port")
		_, err := Build()
		require.Error(t, err, "malformed port provided, but no error raised")
	}

	t.Log("shared port")
	{
		t.Setenv("HTTP_PORT", "4000")
		t.Setenv("GRPC_PORT", "4000")
		_, err := Build()
		require.EqualError(t, err, "http and grpc servers can't share port 4000")
	}
}
