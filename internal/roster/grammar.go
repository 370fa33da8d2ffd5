package roster

import (
	"regexp"
	"strings"
)

// State is the roster parser state.
type State int

const (
	// SeekingTeamHeader: no team header has been read yet.
	SeekingTeamHeader State = iota
	// AccumulatingPlayerBlock: player blocks are attributed to the current team.
	AccumulatingPlayerBlock
)

func (s State) String() string {
	switch s {
	case SeekingTeamHeader:
		return "seeking-team-header"
	case AccumulatingPlayerBlock:
		return "accumulating-player-block"
	default:
		return "unknown"
	}
}

// EmptySlot is the line Yahoo prints for a roster slot with no player.
const EmptySlot = "--empty--"

var (
	headerMarkerRe = regexp.MustCompile(`^Player[ \t]+Cost$`)
	playerLineRe   = regexp.MustCompile(`^(.+) ([a-zA-Z]{2,3}) - ([A-Z]{1,3})$`)
	notesLineRe    = regexp.MustCompile(`[nN]ote`)
)

var injuryStatuses = map[string]bool{
	"Out":          true,
	"Probable":     true,
	"Questionable": true,
	"Suspended":    true,
	"PUP-P":        true,
	"Doubtful":     true,
}

// Slot is a recognized player block. Empty is set for the "--empty--"
// placeholder, in which case the other fields are blank.
type Slot struct {
	Name     string
	NFLTeam  string
	Position string
	Injury   string
	Empty    bool
}

// Step is the outcome of feeding one line to Advance.
type Step struct {
	// Consumed is true when buffer+line formed a complete header or block;
	// the caller resets its buffer. Otherwise the caller appends line.
	Consumed bool
	State    State
	// Team is set when a team header was consumed.
	Team string
	// Slot is set when a player block (or empty slot) was consumed.
	Slot *Slot
}

// Advance evaluates buffer followed by line. Both rules must match every
// buffered line; a rule that only covers a prefix does not count. The team
// header rule is tried before the player rule.
func Advance(state State, buffer []string, line string) Step {
	lines := make([]string, 0, len(buffer)+1)
	lines = append(lines, buffer...)
	lines = append(lines, line)

	if team, ok := matchTeamHeader(lines); ok {
		return Step{Consumed: true, State: AccumulatingPlayerBlock, Team: team}
	}
	if slot, ok := matchPlayerBlock(lines); ok {
		return Step{Consumed: true, State: state, Slot: slot}
	}
	return Step{State: state}
}

// matchTeamHeader matches exactly one team line followed by the column
// header, either "Player<ws>Cost" on one line or "Player" and "Cost" on two.
func matchTeamHeader(lines []string) (string, bool) {
	switch {
	case len(lines) == 2 && headerMarkerRe.MatchString(lines[1]):
		return lines[0], true
	case len(lines) == 3 && lines[1] == "Player" && lines[2] == "Cost":
		return lines[0], true
	}
	return "", false
}

// matchPlayerBlock matches an optional notes line followed by either the
// empty-slot placeholder or a player line, an optional injury status and a
// schedule line.
func matchPlayerBlock(lines []string) (*Slot, bool) {
	if len(lines) > 1 && notesLineRe.MatchString(lines[0]) {
		if slot, ok := matchSlot(lines[1:]); ok {
			return slot, true
		}
	}
	return matchSlot(lines)
}

func matchSlot(lines []string) (*Slot, bool) {
	switch len(lines) {
	case 1:
		if lines[0] == EmptySlot {
			return &Slot{Empty: true}, true
		}
		return nil, false
	case 2, 3:
	default:
		return nil, false
	}

	m := playerLineRe.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, false
	}
	injury := ""
	if len(lines) == 3 {
		if !injuryStatuses[lines[1]] {
			return nil, false
		}
		injury = lines[1]
	}
	if !isScheduleLine(lines[len(lines)-1]) {
		return nil, false
	}
	return &Slot{Name: m[1], NFLTeam: m[2], Position: m[3], Injury: injury}, true
}

func isScheduleLine(s string) bool {
	return strings.Contains(s, "@") || strings.Contains(s, "vs")
}
