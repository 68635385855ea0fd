package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-agent/internal/config"
	"holdem-agent/pkg/agent"
)

func Test_exitCode(t *testing.T) {
	a := assert.New(t)

	a.Equal(exitDecode, exitCode(agent.PhaseReadingState))
	a.Equal(exitDecision, exitCode(agent.PhaseDeciding))
	a.Equal(exitOutput, exitCode(agent.PhaseWritingResult))
}

func Test_applyFlags(t *testing.T) {
	a := assert.New(t)

	cfg := config.DefaultConfig()
	a.Equal(cfg, applyFlags(cfg))

	a.NoError(flag.Set("variant", "b"))
	a.NoError(flag.Set("require-playable", "false"))
	defer func() {
		_ = flag.Set("variant", "")
		_ = flag.Set("require-playable", "true")
	}()

	got := applyFlags(cfg)
	a.Equal("b", got.Variant)
	a.False(got.RequirePlayable)
	a.Equal(cfg.Policy, got.Policy)
}

func Test_setupLogger(t *testing.T) {
	a := assert.New(t)
	defer logrus.SetFormatter(&logrus.TextFormatter{})
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetOutput(os.Stderr)

	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "JSON"
	a.NoError(setupLogger(cfg))
	a.Equal(logrus.DebugLevel, logrus.GetLevel())

	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	logrus.Info("hello")
	var entry map[string]interface{}
	a.NoError(json.Unmarshal(buf.Bytes(), &entry))
	a.Equal("hello", entry["msg"])

	cfg.Log.Level = "loud"
	a.Error(setupLogger(cfg))
}
