// Package roster reads Yahoo's end-of-season roster page, copied as plain
// text, into a model.Roster.
//
// A roster document is a sequence of team sections:
//
//	Y Not Zoidberg?!
//	Player	Cost
//	No new player Notes
//	Ben Roethlisberger Pit - QB
//	Mon 7:10 pm @ Washington
//	No new player Notes
//	--empty--
//
// Every player is attributed to the manager who owns the enclosing team.
package roster

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"keeper-rounds/internal/model"
	"keeper-rounds/internal/owners"
	"keeper-rounds/internal/snippet"
)

// Document names the roster document in grammar errors.
const Document = "roster"

// Extract parses the roster document from r. Team names are resolved with
// res; if any of them is unknown the whole document is still read and an
// *owners.UnknownOwnersError listing all of them is returned. Text left over
// at the end is reported as a *snippet.GrammarError.
func Extract(r io.Reader, res *owners.Resolver, log *zap.Logger) (*model.Roster, error) {
	if log == nil {
		log = zap.NewNop()
	}
	out := model.NewRoster()
	state := SeekingTeamHeader
	team := ""
	var buf snippet.Buffer

	err := snippet.Scan(r, func(line string) error {
		step := Advance(state, buf.Lines(), line)
		state = step.State
		if !step.Consumed {
			buf.Append(line)
			return nil
		}
		buf.Reset()

		if step.Slot == nil {
			team = step.Team
			log.Debug("roster team", zap.String("team", team))
			return nil
		}
		if step.Slot.Empty {
			return nil
		}
		owner, _, err := res.Resolve(team)
		if err != nil {
			return err
		}
		out.Put(model.NewPlayerRecord(step.Slot.Name, step.Slot.NFLTeam, step.Slot.Position, owner))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	if err := buf.Leftover(Document); err != nil {
		return nil, err
	}
	if err := res.UnknownError(); err != nil {
		return nil, err
	}
	log.Debug("roster parsed", zap.Int("players", out.Len()))
	return out, nil
}
