// Package report renders a finished keeper run: the statement pasted into
// Yahoo's keeper page, a JSON report and an XLSX keeper sheet.
package report

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"keeper-rounds/internal/draft"
	"keeper-rounds/internal/keeper"
	"keeper-rounds/internal/model"
	"keeper-rounds/internal/pipeline"
	"keeper-rounds/internal/store"
)

// Entry is one player row of a Report.
type Entry struct {
	Key          model.PlayerKey `json:"key"`
	Name         string          `json:"name"`
	NFLTeam      string          `json:"nfl_team"`
	Position     string          `json:"position"`
	LastManager  string          `json:"last_manager"`
	DraftManager string          `json:"draft_manager"`
	DraftRound   string          `json:"draft_round"`
	KeeperRound  int             `json:"keeper_round"`
}

// Report is the JSON form of a run.
type Report struct {
	GeneratedAtUTC string         `json:"generated_at_utc"`
	Rules          keeper.Rules   `json:"rules"`
	Players        []Entry        `json:"players"`
	Orphans        []draft.Orphan `json:"orphans"`
}

// Build converts a pipeline result into a Report stamped with now.
func Build(res *pipeline.Result, now time.Time) (*Report, error) {
	recs := res.Roster.Records()
	players := make([]Entry, 0, len(recs))
	for _, p := range recs {
		if p.KeeperRound == nil {
			return nil, fmt.Errorf("report: %s has no keeper round", p.Key())
		}
		players = append(players, Entry{
			Key:          p.Key(),
			Name:         p.Name,
			NFLTeam:      p.NFLTeam,
			Position:     p.Position,
			LastManager:  p.LastManager,
			DraftManager: p.DraftManager,
			DraftRound:   p.RoundLabel,
			KeeperRound:  *p.KeeperRound,
		})
	}
	orphans := make([]draft.Orphan, 0)
	if res.Draft != nil {
		orphans = append(orphans, res.Draft.Orphans...)
	}
	return &Report{
		GeneratedAtUTC: now.UTC().Format(time.RFC3339),
		Rules:          res.Rules,
		Players:        players,
		Orphans:        orphans,
	}, nil
}

var jsQuote = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Statement renders `var k={"<NAME>":<ROUND>,...};` in roster order.
func Statement(roster *model.Roster) (string, error) {
	var b strings.Builder
	b.WriteString("var k={")
	for i, p := range roster.Records() {
		if p.KeeperRound == nil {
			return "", fmt.Errorf("report: %s has no keeper round", p.Key())
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(jsQuote.Replace(p.Name))
		b.WriteString(`":`)
		b.WriteString(strconv.Itoa(*p.KeeperRound))
	}
	b.WriteString("};")
	return b.String(), nil
}

// WriteJSON writes rep to path as indented JSON.
func WriteJSON(path string, rep *Report) error {
	st := store.NewJSONStore(filepath.Dir(path))
	return st.WriteJSON(filepath.Base(path), rep)
}
