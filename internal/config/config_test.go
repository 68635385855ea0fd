package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-agent/internal/util"
	"holdem-agent/pkg/protocol"
)

func TestInstance(t *testing.T) {
	config = Config{}
	defer util.SetEnv("AGENT_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("AGENT_POLICY", "strength")()

	a := assert.New(t)
	cfg := Instance()
	a.Equal(protocol.VariantB, cfg.ProtocolVariant())
	a.Equal("strength", cfg.Policy)
	a.Equal("team-7", cfg.Self)
	a.Equal(40, cfg.Samples)
	a.Equal("info", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format, "defaults fill what the file leaves out")
	a.True(cfg.RequirePlayable)

	// ensure that it's only loaded once
	_ = os.Setenv("AGENT_POLICY", "random")
	// ensure we aren't using a pointer
	cfg.Policy = "bad"
	cfg = Instance()
	a.Equal("strength", cfg.Policy)
}

func TestDefaults(t *testing.T) {
	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(protocol.VariantA, cfg.ProtocolVariant())
	a.Equal("check", cfg.Policy)
	a.Equal("warning", cfg.Log.Level)
}

func TestLoad_env(t *testing.T) {
	a := assert.New(t)
	defer util.SetEnv("AGENT_VARIANT", "blinds")()
	defer util.SetEnv("AGENT_LOG_LEVEL", "debug")()
	defer util.SetEnv("AGENT_REQUIRE_PLAYABLE", "false")()

	a.NoError(Load())
	cfg := Instance()
	a.Equal(protocol.VariantB, cfg.ProtocolVariant())
	a.Equal("debug", cfg.Log.Level)
	a.False(cfg.RequirePlayable)
}

func TestLoad_invalid(t *testing.T) {
	a := assert.New(t)

	unset := util.SetEnv("AGENT_VARIANT", "z")
	a.EqualError(Load(), "invalid variant: z")
	unset()

	unset = util.SetEnv("AGENT_POLICY", "bluff")
	a.EqualError(Load(), "unknown policy: bluff")
	unset()

	unset = util.SetEnv("AGENT_CONFIG_FILE", "testdata/missing.yaml")
	a.Error(Load())
	unset()
}
