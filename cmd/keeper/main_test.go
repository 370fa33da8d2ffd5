package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"keeper-rounds/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testOwners = `Y Not Zoidberg?!: alice
Game of Foles: bob
`

const testRoster = `Y Not Zoidberg?!
Player	Cost
No new player Notes
Ben Roethlisberger Pit - QB
Mon 7:10 pm @ Washington
No new player Notes
Rob Gronkowski NE - TE
Sun 1:00 pm vs Buffalo
Game of Foles
Player	Cost
No new player Notes
LeSean McCoy Buf - RB
Sun 1:00 pm @ Indianapolis
`

const testDraft = `Round 1
1.	LeSean McCoy
(Buf - RB)
Y Not Zoidberg?!
2.	Adrian Peterson
(Min - RB)
Game of Foles
Round 6
61.	Ben Roethlisberger
(Pit - QB)
Y Not Zoidberg?!
`

type fixture struct {
	dir, roster, draft, owners string
}

func writeFixture(t *testing.T, roster, draft, owners string) fixture {
	t.Helper()
	dir := t.TempDir()
	fx := fixture{
		dir:    dir,
		roster: filepath.Join(dir, "roster.txt"),
		draft:  filepath.Join(dir, "draft.txt"),
		owners: filepath.Join(dir, "owners.yaml"),
	}
	require.NoError(t, os.WriteFile(fx.roster, []byte(roster), 0o644))
	require.NoError(t, os.WriteFile(fx.draft, []byte(draft), 0o644))
	require.NoError(t, os.WriteFile(fx.owners, []byte(owners), 0o644))
	return fx
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.Default())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKeeper_PrintsStatement(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft, testOwners)

	out, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners)
	require.NoError(t, err)

	assert.Contains(t, out, "Parsed 3 players from roster\n")
	assert.Contains(t, out, "Drafted players not on any roster: 1\n")
	assert.True(t, strings.HasSuffix(out,
		"To import to Yahoo's keeper page:\n"+
			`var k={"Ben Roethlisberger":3,"Rob Gronkowski":12,"LeSean McCoy":999};`+"\n"), out)
}

func TestKeeper_OutputIsStable(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft, testOwners)

	first, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners)
	require.NoError(t, err)
	second, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKeeper_RuleFlags(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft, testOwners)

	out, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners,
		"-k", "2", "-f", "10", "--unkeepable-rounds", "0", "--unkeepable-round-id", "50")
	require.NoError(t, err)
	// McCoy: round 1, drafted by alice, ended with bob -> min(1-2, 10).
	assert.Contains(t, out, `var k={"Ben Roethlisberger":4,"Rob Gronkowski":10,"LeSean McCoy":-1};`)
}

func TestKeeper_InvalidRuleFlag(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft, testOwners)

	_, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners, "-f", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARound")
}

func TestKeeper_RosterFailureExitsCleanly(t *testing.T) {
	fx := writeFixture(t, testRoster+"stray line\n", testDraft, testOwners)

	out, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners)
	require.NoError(t, err)
	assert.Contains(t, out, "stray line")
	assert.Contains(t, out, "No valid roster, exiting")
	assert.NotContains(t, out, "var k=")
}

func TestKeeper_EmptyRosterExitsCleanly(t *testing.T) {
	fx := writeFixture(t, "", testDraft, testOwners)

	out, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners)
	require.NoError(t, err)
	assert.Contains(t, out, "no players found in roster")
	assert.Contains(t, out, "No valid roster, exiting")
	assert.NotContains(t, out, "var k=")
}

func TestKeeper_UnknownOwnersListed(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft, "Y Not Zoidberg?!: alice\n")

	out, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners)
	require.NoError(t, err)
	assert.Contains(t, out, " - Game of Foles")
	assert.Contains(t, out, "No valid roster, exiting")
	assert.NotContains(t, out, "var k=")
}

func TestKeeper_DraftFailureExitsCleanly(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft+"1.\tHalf A Pick\n", testOwners)

	out, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners)
	require.NoError(t, err)
	assert.Contains(t, out, "Half A Pick")
	assert.Contains(t, out, "No valid keeper data, exiting")
	assert.NotContains(t, out, "var k=")
}

func TestKeeper_WritesReports(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft, testOwners)
	jsonPath := filepath.Join(fx.dir, "out", "keepers.json")
	xlsxPath := filepath.Join(fx.dir, "keepers.xlsx")

	_, err := execute(t, "-r", fx.roster, "-d", fx.draft, "-o", fx.owners,
		"--json-out", jsonPath, "--xlsx-out", xlsxPath)
	require.NoError(t, err)

	b, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name": "LeSean McCoy"`)
	assert.Contains(t, string(b), `"player": "Adrian Peterson"`)

	_, err = os.Stat(xlsxPath)
	assert.NoError(t, err)
}

func TestKeeper_MissingFile(t *testing.T) {
	fx := writeFixture(t, testRoster, testDraft, testOwners)

	_, err := execute(t, "-r", filepath.Join(fx.dir, "nope.txt"), "-d", fx.draft, "-o", fx.owners)
	assert.Error(t, err)
}

func TestKeeper_RequiredFlags(t *testing.T) {
	_, err := execute(t, "-r", "roster.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
