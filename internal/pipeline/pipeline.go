// Package pipeline runs one keeper computation: roster, then draft, then the
// keeper rules, all resolving team names through a single owners.Resolver.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"keeper-rounds/internal/draft"
	"keeper-rounds/internal/keeper"
	"keeper-rounds/internal/model"
	"keeper-rounds/internal/owners"
	"keeper-rounds/internal/roster"
)

// Stage names the step a StageError came from.
type Stage string

const (
	StageRoster Stage = "roster"
	StageDraft  Stage = "draft"
	StageKeeper Stage = "keeper"
)

// StageError wraps the failure of one stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ErrEmptyRoster is the roster stage failure for a document without a
// single rostered player.
var ErrEmptyRoster = errors.New("no players found in roster")

// Inputs are the three documents of a run. Each is read once.
type Inputs struct {
	Roster io.Reader
	Draft  io.Reader
	Owners io.Reader
}

// Result is the outcome of a successful run.
type Result struct {
	Roster *model.Roster
	Draft  *draft.Result
	Rules  keeper.Rules
}

// Run extracts the roster, attaches draft data and applies rules. Nothing is
// returned unless every stage succeeds.
func Run(in Inputs, rules keeper.Rules, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res := owners.NewResolver(in.Owners, log)

	players, err := roster.Extract(in.Roster, res, log)
	if err != nil {
		return nil, &StageError{Stage: StageRoster, Err: err}
	}
	if players.Len() == 0 {
		return nil, &StageError{Stage: StageRoster, Err: ErrEmptyRoster}
	}
	log.Info("roster parsed", zap.Int("players", players.Len()))

	dr, err := draft.Extract(in.Draft, players, res, log)
	if err != nil {
		return nil, &StageError{Stage: StageDraft, Err: err}
	}
	log.Info("draft parsed",
		zap.Int("picks", dr.Picks),
		zap.Int("matched", dr.Matched),
		zap.Int("orphans", len(dr.Orphans)),
	)

	if err := keeper.Apply(players, rules); err != nil {
		return nil, &StageError{Stage: StageKeeper, Err: err}
	}
	return &Result{Roster: players, Draft: dr, Rules: rules}, nil
}
