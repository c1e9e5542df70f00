package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DEVSERVER_ADDR", "DEVSERVER_SECRET_KEY", "DEVSERVER_TOKEN_TTL",
		"DEVSERVER_LOG_BACKEND", "DEVSERVER_LOG_LEVEL", "DEVSERVER_LOG_ENCODING",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":5000", c.Addr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "zap", c.LogBackend)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	clearEnv(t)

	c := load(nil)
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	if diff := cmp.Diff(want, *c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvThenFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVSERVER_ADDR", ":6000")
	t.Setenv("DEVSERVER_SECRET_KEY", "from-env")
	t.Setenv("DEVSERVER_TOKEN_TTL", "90")
	t.Setenv("DEVSERVER_LOG_LEVEL", "debug")

	c := load([]string{"-a", ":7000", "-unknown", "x"})

	assert.Equal(t, ":7000", c.Addr, "flag beats env")
	assert.Equal(t, "from-env", c.SecretKey)
	assert.Equal(t, 90*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseFlags_TokenTTL(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	parseFlags(c, []string{"-t", "15", "-s", "k"})

	assert.Equal(t, 15*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, "k", c.SecretKey)
}

func TestParseFlags_BadValuePanics(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	assert.Panics(t, func() { parseFlags(c, []string{"-t", "soon"}) })
}

func TestLoad_EmptySecretIsRandomised(t *testing.T) {
	clearEnv(t)

	a := load([]string{"-s", ""})
	b := load([]string{"-s", ""})

	assert.Len(t, a.SecretKey, 64)
	assert.NotEqual(t, a.SecretKey, b.SecretKey)
}
