package model

import (
	"strconv"
	"strings"
)

// FreeAgentLabel is the round label of a player nobody drafted.
const FreeAgentLabel = "FA"

// PlayerKey identifies a player across the roster and draft documents.
type PlayerKey string

// NewPlayerKey builds the NAME/TEAM/POS key. Each part is trimmed and
// upper-cased so that case and padding never split one player in two.
func NewPlayerKey(name, team, pos string) PlayerKey {
	return PlayerKey(normKeyPart(name) + "/" + normKeyPart(team) + "/" + normKeyPart(pos))
}

func normKeyPart(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// PlayerRecord is one rostered player. Every field exists from construction;
// the draft extractor fills DraftManager/DraftRound and the keeper rules fill
// RoundLabel/KeeperRound.
type PlayerRecord struct {
	Name         string `json:"name"`
	NFLTeam      string `json:"nfl_team"`
	Position     string `json:"position"`
	LastManager  string `json:"last_manager"`
	DraftManager string `json:"draft_manager"`
	DraftRound   *int   `json:"draft_round"`
	RoundLabel   string `json:"round_label"`
	KeeperRound  *int   `json:"keeper_round"`
}

// NewPlayerRecord returns an undrafted record owned by lastManager at the
// end of last season.
func NewPlayerRecord(name, team, pos, lastManager string) *PlayerRecord {
	return &PlayerRecord{
		Name:        name,
		NFLTeam:     team,
		Position:    pos,
		LastManager: lastManager,
	}
}

func (p *PlayerRecord) Key() PlayerKey {
	return NewPlayerKey(p.Name, p.NFLTeam, p.Position)
}

// Drafted reports whether a manager picked this player in the draft.
func (p *PlayerRecord) Drafted() bool {
	return p.DraftManager != ""
}

// SetDraft records the round and manager of the pick.
func (p *PlayerRecord) SetDraft(round int, manager string) {
	r := round
	p.DraftRound = &r
	p.DraftManager = manager
}

// SetKeeper records the computed keeper round and its label.
func (p *PlayerRecord) SetKeeper(label string, round int) {
	r := round
	p.RoundLabel = label
	p.KeeperRound = &r
}

// DraftRoundLabel renders the draft round, or "FA" when undrafted.
func (p *PlayerRecord) DraftRoundLabel() string {
	if p.DraftRound == nil || !p.Drafted() {
		return FreeAgentLabel
	}
	return strconv.Itoa(*p.DraftRound)
}
