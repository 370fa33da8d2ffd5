package draft

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// State is the draft parser state.
type State int

const (
	// BeforeFirstRound: no "Round N" marker has been read yet.
	BeforeFirstRound State = iota
	// InRound: picks belong to the most recent round marker.
	InRound
)

func (s State) String() string {
	switch s {
	case BeforeFirstRound:
		return "before-first-round"
	case InRound:
		return "in-round"
	default:
		return "unknown"
	}
}

var (
	roundLineRe   = regexp.MustCompile(`^Round ([1-9][0-9]?)$`)
	pickLineRe    = regexp.MustCompile(`^([1-9][0-9]*)\.\s+(.+)$`)
	pickNumberRe  = regexp.MustCompile(`^([1-9][0-9]*)\.\s*$`)
	teamPosLineRe = regexp.MustCompile(`^\(([a-zA-Z]{2,3}) - ([A-Z]{1,3})\)$`)
)

// Pick is one recognized draft selection.
type Pick struct {
	Number   int
	Player   string
	NFLTeam  string
	Position string
	// Owner is the fantasy team line printed under the pick.
	Owner string
}

// Step is the outcome of feeding one line to Advance.
type Step struct {
	// Consumed is true when the leading buffered lines formed a round marker
	// or a pick; the caller resets its buffer.
	Consumed bool
	State    State
	// Round is set when a round marker was consumed.
	Round int
	Pick  *Pick
}

// Advance evaluates buffer followed by line. Unlike the roster grammar, a rule
// only has to match the leading lines of the buffer.
func Advance(state State, buffer []string, line string) Step {
	lines := make([]string, 0, len(buffer)+1)
	lines = append(lines, buffer...)
	lines = append(lines, line)

	if m := roundLineRe.FindStringSubmatch(lines[0]); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Step{Consumed: true, State: InRound, Round: n}
	}
	if p, ok := matchPick(lines); ok {
		return Step{Consumed: true, State: state, Pick: p}
	}
	return Step{State: state}
}

// matchPick matches "<n>.<ws><player>", an optional one-character annotation
// line, "(<team> - <pos>)" and the owner line. The player name may also sit
// on its own line after a bare "<n>." line.
func matchPick(lines []string) (*Pick, bool) {
	var number, player string
	i := 1
	if m := pickLineRe.FindStringSubmatch(lines[0]); m != nil {
		number, player = m[1], m[2]
	} else if m := pickNumberRe.FindStringSubmatch(lines[0]); m != nil && len(lines) > 1 {
		number, player = m[1], lines[1]
		i = 2
	} else {
		return nil, false
	}
	if len(lines) > i && utf8.RuneCountInString(lines[i]) == 1 {
		i++
	}
	if len(lines) <= i+1 {
		return nil, false
	}
	tp := teamPosLineRe.FindStringSubmatch(lines[i])
	if tp == nil {
		return nil, false
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return nil, false
	}
	return &Pick{
		Number:   n,
		Player:   player,
		NFLTeam:  tp[1],
		Position: tp[2],
		Owner:    lines[i+1],
	}, true
}
