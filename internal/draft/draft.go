// Package draft reads Yahoo's draft results page, copied as plain text, and
// attaches each pick's round and drafting manager to the rostered player.
//
//	Round 1
//	1.	LeSean McCoy
//	(Buf - RB)
//	Game of Foles
//
// Picks of players who are no longer on any roster are reported and skipped.
package draft

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"keeper-rounds/internal/model"
	"keeper-rounds/internal/owners"
	"keeper-rounds/internal/snippet"
)

// Document names the draft document in grammar errors.
const Document = "draft"

// Orphan is a drafted player missing from the roster.
type Orphan struct {
	Round  int             `json:"round"`
	Pick   int             `json:"pick"`
	Player string          `json:"player"`
	Key    model.PlayerKey `json:"key"`
	Owner  string          `json:"owner"`
}

// Result summarizes a draft pass.
type Result struct {
	Rounds  int      `json:"rounds"`
	Picks   int      `json:"picks"`
	Matched int      `json:"matched"`
	Orphans []Orphan `json:"orphans"`
}

// Extract parses the draft document from r and updates the matching records
// of roster in place. Owner lines are resolved with res; unresolved owners are
// returned together as an *owners.UnknownOwnersError once the document has
// been read. Text left over at the end is a *snippet.GrammarError.
func Extract(r io.Reader, roster *model.Roster, res *owners.Resolver, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	out := &Result{Orphans: make([]Orphan, 0)}
	state := BeforeFirstRound
	round := 0
	var buf snippet.Buffer

	err := snippet.Scan(r, func(line string) error {
		step := Advance(state, buf.Lines(), line)
		state = step.State
		if !step.Consumed {
			buf.Append(line)
			return nil
		}
		consumed := append(append([]string(nil), buf.Lines()...), line)
		buf.Reset()

		if step.Pick == nil {
			round = step.Round
			out.Rounds++
			log.Debug("draft round", zap.Int("round", round))
			return nil
		}
		if state == BeforeFirstRound {
			return snippet.NewGrammarError(Document, "pick before any round marker", consumed)
		}

		p := step.Pick
		out.Picks++
		owner, ok, err := res.Resolve(p.Owner)
		if err != nil {
			return err
		}
		key := model.NewPlayerKey(p.Player, p.NFLTeam, p.Position)
		rec, found := roster.Get(key)
		if !found {
			log.Warn("not in any team anymore",
				zap.String("player", p.Player),
				zap.String("id", string(key)),
				zap.Int("round", round),
			)
			out.Orphans = append(out.Orphans, Orphan{
				Round:  round,
				Pick:   p.Number,
				Player: p.Player,
				Key:    key,
				Owner:  owner,
			})
			return nil
		}
		if ok {
			rec.SetDraft(round, owner)
		}
		out.Matched++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}

	if err := buf.Leftover(Document); err != nil {
		return nil, err
	}
	if err := res.UnknownError(); err != nil {
		return nil, err
	}
	log.Debug("draft parsed",
		zap.Int("rounds", out.Rounds),
		zap.Int("picks", out.Picks),
		zap.Int("orphans", len(out.Orphans)),
	)
	return out, nil
}
