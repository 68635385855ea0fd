package agent

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"holdem-agent/internal/util"
	"holdem-agent/pkg/gamestate"
	"holdem-agent/pkg/policy"
	"holdem-agent/pkg/protocol"
)

// ErrAlreadyRan is returned when Run is called a second time
var ErrAlreadyRan = errors.New("agent has already run")

// DecisionError is returned when the policy panics
type DecisionError struct {
	Value interface{}
}

func (d DecisionError) Error() string {
	return fmt.Sprintf("decision failed: %v", d.Value)
}

// Agent decodes one state, asks the policy once and writes the single result line
type Agent struct {
	variant         protocol.Variant
	policy          policy.Policy
	requirePlayable bool
	log             logrus.FieldLogger
	phase           Phase
	failedIn        Phase
}

// Option configures an Agent
type Option func(a *Agent)

// WithRequirePlayable rejects states without players or pots before the policy sees them
func WithRequirePlayable(require bool) Option {
	return func(a *Agent) {
		a.requirePlayable = require
	}
}

// WithLogger sets the logger, the standard logrus logger is used otherwise
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Agent) {
		a.log = log
	}
}

// New returns an agent for a single invocation
func New(variant protocol.Variant, p policy.Policy, opts ...Option) *Agent {
	a := &Agent{
		variant: variant,
		policy:  p,
		log:     logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.log = a.log.WithFields(logrus.Fields{
		"runId":   util.NewRunID(),
		"variant": string(variant),
	})

	return a
}

// Phase returns where the agent is
func (a *Agent) Phase() Phase {
	return a.phase
}

// FailedIn returns the phase that failed, only meaningful once Phase is PhaseFailed
func (a *Agent) FailedIn() Phase {
	return a.failedIn
}

func (a *Agent) setPhase(phase Phase) {
	a.log.WithField("phase", phase.String()).Debug("phase change")
	a.phase = phase
}

func (a *Agent) fail(err error) error {
	a.failedIn = a.phase
	a.log.WithError(err).WithField("failedIn", a.phase.String()).Error("agent failed")
	a.setPhase(PhaseFailed)
	return err
}

// Run reads the state from in, decides, and writes the action code to out.
// Nothing is written to out unless the decision succeeded.
func (a *Agent) Run(in io.Reader, out io.Writer) (int, error) {
	if a.phase != PhaseStart {
		return 0, ErrAlreadyRan
	}

	a.setPhase(PhaseReadingState)
	state, err := protocol.Decode(in, a.variant)
	if err != nil {
		return 0, a.fail(err)
	}

	if a.requirePlayable {
		if err := protocol.RequirePlayable(state); err != nil {
			return 0, a.fail(err)
		}
	}

	a.setPhase(PhaseDecoded)
	a.log.WithFields(logrus.Fields{
		"players": len(state.Players),
		"pots":    len(state.Pots),
		"round":   state.CurrentRound,
	}).Info("state decoded")

	a.setPhase(PhaseDeciding)
	action, err := a.decide(state)
	if err != nil {
		return 0, a.fail(err)
	}

	a.setPhase(PhaseDecided)
	a.log.WithField("action", action).Info("decided")

	a.setPhase(PhaseWritingResult)
	if err := writeResult(out, action); err != nil {
		return 0, a.fail(err)
	}

	a.setPhase(PhaseDone)
	return action, nil
}

func (a *Agent) decide(state *gamestate.GameState) (action int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = DecisionError{Value: r}
		}
	}()

	return a.policy.Bet(state), nil
}

// writeResult writes the whole line with a single Write
func writeResult(out io.Writer, action int) error {
	line := strconv.AppendInt(nil, int64(action), 10)
	line = append(line, '\n')

	n, err := out.Write(line)
	if err != nil {
		return err
	}

	if n != len(line) {
		return io.ErrShortWrite
	}

	return nil
}
