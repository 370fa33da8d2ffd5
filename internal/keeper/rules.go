// Package keeper computes the round each rostered player would cost to keep
// next season.
package keeper

import (
	"fmt"

	"keeper-rounds/internal/model"
)

// Rules are the league's keeper settings.
type Rules struct {
	// SubRounds is how many rounds a kept player appreciates per year.
	SubRounds int `json:"keeper_sub_rounds"`
	// FARound is the keeper round of undrafted pickups and the latest round a
	// player drafted by another manager can cost.
	FARound int `json:"fa_round"`
	// UnkeepableRounds is how many top rounds can never be kept.
	UnkeepableRounds int `json:"unkeepable_rounds"`
	// UnkeepableRoundID marks an unkeepable player's keeper round.
	UnkeepableRoundID int `json:"unkeepable_round_id"`
}

// DefaultRules are the league defaults.
func DefaultRules() Rules {
	return Rules{
		SubRounds:         3,
		FARound:           12,
		UnkeepableRounds:  5,
		UnkeepableRoundID: 999,
	}
}

// Rule returns the round label and keeper round of p without modifying it.
//
// Undrafted players cost FARound. Players drafted in the first
// UnkeepableRounds rounds get UnkeepableRoundID. A player still owned by the
// manager who drafted them moves up SubRounds rounds; a player who changed
// hands moves up the same amount but never costs more than FARound. The
// result is not clamped, so it can be zero or negative.
func Rule(p *model.PlayerRecord, rules Rules) (string, int, error) {
	if !p.Drafted() {
		return model.FreeAgentLabel, rules.FARound, nil
	}
	if p.DraftRound == nil {
		return "", 0, fmt.Errorf("keeper: %s drafted by %s without a round", p.Key(), p.DraftManager)
	}
	round := *p.DraftRound
	label := p.DraftRoundLabel()
	switch {
	case round <= rules.UnkeepableRounds:
		return label, rules.UnkeepableRoundID, nil
	case p.DraftManager == p.LastManager:
		return label, round - rules.SubRounds, nil
	default:
		return label, min(round-rules.SubRounds, rules.FARound), nil
	}
}

// Apply sets the keeper round of every record in roster.
func Apply(roster *model.Roster, rules Rules) error {
	for _, p := range roster.Records() {
		label, round, err := Rule(p, rules)
		if err != nil {
			return err
		}
		p.SetKeeper(label, round)
	}
	return nil
}
