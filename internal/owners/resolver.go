// Package owners maps fantasy team names to the managers who own them.
//
// Team names in the exports are free text and sometimes truncated, so both the
// mapping keys and the looked-up names are reduced to TeamKey before lookup.
// Misses are collected rather than returned as errors so that one run can
// report every unmapped team at once.
package owners

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// teamKeyLen is how many leading characters of a team name are significant.
const teamKeyLen = 12

// TeamKey normalizes a team name: first 12 characters, lower-cased, trimmed.
func TeamKey(team string) string {
	r := []rune(team)
	if len(r) > teamKeyLen {
		r = r[:teamKeyLen]
	}
	return strings.TrimSpace(strings.ToLower(string(r)))
}

// Resolver resolves team names against a YAML team -> owner document. The
// document is read on the first Resolve call and never again.
type Resolver struct {
	src     io.Reader
	log     *zap.Logger
	loaded  bool
	loadErr error
	owners  map[string]string
	unknown []string
	seen    map[string]bool
}

// NewResolver returns a resolver reading its mapping from src on first use.
func NewResolver(src io.Reader, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		src:  src,
		log:  log,
		seen: make(map[string]bool),
	}
}

// Load reads the mapping if it has not been read yet. A failed load is
// remembered and returned by every later call.
func (r *Resolver) Load() error {
	if r.loaded {
		return r.loadErr
	}
	r.loaded = true
	r.owners, r.loadErr = parseOwners(r.src)
	r.src = nil
	if r.loadErr == nil {
		r.log.Debug("loaded owner mapping", zap.Int("teams", len(r.owners)))
	}
	return r.loadErr
}

func parseOwners(src io.Reader) (map[string]string, error) {
	if src == nil {
		return nil, errors.New("owners: no mapping source")
	}
	raw := make(map[string]string)
	if err := yaml.NewDecoder(src).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("owners: mapping is empty")
		}
		return nil, fmt.Errorf("owners: parse mapping: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("owners: mapping is empty")
	}
	out := make(map[string]string, len(raw))
	for team, owner := range raw {
		owner = strings.TrimSpace(owner)
		if owner == "" {
			return nil, fmt.Errorf("owners: team %q has no owner", team)
		}
		out[TeamKey(team)] = owner
	}
	return out, nil
}

// Resolve returns the owner of team. ok is false when the team is not in the
// mapping; the raw name is then remembered for UnknownError. err is only set
// when the mapping itself could not be loaded.
func (r *Resolver) Resolve(team string) (owner string, ok bool, err error) {
	if err := r.Load(); err != nil {
		return "", false, err
	}
	owner, ok = r.owners[TeamKey(team)]
	if !ok && !r.seen[team] {
		r.seen[team] = true
		r.unknown = append(r.unknown, team)
		r.log.Debug("unknown team", zap.String("team", team))
	}
	return owner, ok, nil
}

// Unknown returns the unresolved team names in first-seen order.
func (r *Resolver) Unknown() []string {
	out := make([]string, len(r.unknown))
	copy(out, r.unknown)
	return out
}

// UnknownError returns an *UnknownOwnersError listing every unresolved team,
// or nil when all lookups succeeded.
func (r *Resolver) UnknownError() error {
	if len(r.unknown) == 0 {
		return nil
	}
	return &UnknownOwnersError{Teams: r.Unknown()}
}

// UnknownOwnersError lists team names missing from the owner mapping.
type UnknownOwnersError struct {
	Teams []string
}

func (e *UnknownOwnersError) Error() string {
	return "unknown owners:\n - " + strings.Join(e.Teams, "\n - ")
}
