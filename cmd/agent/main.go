package main

import (
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"holdem-agent/internal/config"
	"holdem-agent/internal/rng"
	"holdem-agent/pkg/agent"
	"holdem-agent/pkg/policy"
)

// exit codes
const (
	exitOK = iota
	exitConfig
	exitDecode
	exitDecision
	exitOutput
)

var (
	variant         = flag.String("variant", "", "the judge's line layout: a, b or c")
	policyName      = flag.String("policy", "", "the decision policy: "+strings.Join(policy.Names(), ", "))
	self            = flag.String("self", "", "this agent's player identifier")
	samples         = flag.Int("samples", 0, "flop runouts evaluated by the strength policy")
	seed            = flag.Int64("seed", 0, "seed for repeatable decisions, 0 uses crypto/rand")
	requirePlayable = flag.Bool("require-playable", true, "reject states without players or pots")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if err := config.Load(); err != nil {
		logrus.WithError(err).Error("could not load configuration")
		return exitConfig
	}

	cfg := applyFlags(config.Instance())
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Error("invalid configuration")
		return exitConfig
	}

	if err := setupLogger(cfg); err != nil {
		logrus.WithError(err).Error("could not parse level")
		return exitConfig
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logrus.Warn("reading the game state from a terminal, end each field with a newline")
	}

	opts := policy.Options{Self: cfg.Self, Samples: cfg.Samples}
	if *seed != 0 {
		opts.Generator = rng.NewSeeded(*seed)
	}

	p, err := policy.FromString(cfg.Policy, opts)
	if err != nil {
		logrus.WithError(err).Error("could not create policy")
		return exitConfig
	}

	a := agent.New(cfg.ProtocolVariant(), p, agent.WithRequirePlayable(cfg.RequirePlayable))
	if _, err := a.Run(os.Stdin, os.Stdout); err != nil {
		return exitCode(a.FailedIn())
	}

	return exitOK
}

// applyFlags overrides the loaded configuration with flags that were set on the command line
func applyFlags(cfg config.Config) config.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variant
		case "policy":
			cfg.Policy = *policyName
		case "self":
			cfg.Self = *self
		case "samples":
			cfg.Samples = *samples
		case "require-playable":
			cfg.RequirePlayable = *requirePlayable
		}
	})

	return cfg
}

func exitCode(failedIn agent.Phase) int {
	switch failedIn {
	case agent.PhaseStart, agent.PhaseReadingState:
		return exitDecode
	case agent.PhaseDeciding:
		return exitDecision
	}

	return exitOutput
}

func setupLogger(cfg config.Config) error {
	logrus.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)
	}

	format := strings.ToLower(cfg.Log.Format)
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = strings.ToLower(env)
	}

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}
