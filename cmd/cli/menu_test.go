package main

import (
	"bytes"
	"strings"
	"testing"

	"shortlist/pkg/common"
	"shortlist/pkg/config"
	"shortlist/pkg/core"
	"shortlist/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, seed bool, input string) (*core.Shortlist, string) {
	t.Helper()
	cfg := config.Default()
	sl, err := core.NewShortlist(cfg, logging.Discard())
	require.NoError(t, err)
	if seed {
		sl.Seed(cfg.Seed)
	}
	var out bytes.Buffer
	NewMenu(sl, strings.NewReader(input), &out, cfg.Display).Run()
	return sl, out.String()
}

func TestMenuAddAndSearch(t *testing.T) {
	sl, out := runSession(t, false, strings.Join([]string{
		"1", "Mei", "Go", "abc", "150", "97",
		"3", "Go",
		"5",
	}, "\n")+"\n")

	assert.Equal(t, []common.Record{{Name: "Mei", Tag: "Go", Score: 97}}, sl.Ascending())
	assert.Equal(t, 2, strings.Count(out, "Invalid! Enter integer 0-100: "))
	assert.Contains(t, out, "Candidate added successfully!")
	assert.Contains(t, out, "Search Results for: Go")
	assert.Contains(t, out, "Total candidates: 1")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenuListsSeededCandidates(t *testing.T) {
	_, out := runSession(t, true, "2\n4\n5\n")

	desc := strings.Index(out, "All Candidates (Highest → Lowest)")
	asc := strings.Index(out, "All Candidates (Lowest → Highest)")
	require.NotEqual(t, -1, desc)
	require.NotEqual(t, -1, asc)
	assert.Less(t, desc, asc)

	// Pooja (95) leads the descending table, Priya (78) the ascending one
	assert.Less(t, strings.Index(out[desc:], "Pooja"), strings.Index(out[desc:], "Priya"))
	assert.Less(t, strings.Index(out[asc:], "Priya"), strings.Index(out[asc:], "Pooja"))
	assert.Equal(t, 2, strings.Count(out, "Total candidates: 8"))
}

func TestMenuRejectsBadChoices(t *testing.T) {
	_, out := runSession(t, false, "x\n9\n\n4\n5\n")

	assert.Contains(t, out, "Invalid input. Try again.")
	assert.Contains(t, out, "Enter a number between 1 and 5.")
	assert.Contains(t, out, "No candidates found.")
}

func TestMenuEndsOnEOF(t *testing.T) {
	sl, out := runSession(t, false, "1\nHalf")
	assert.True(t, sl.IsEmpty())
	assert.NotContains(t, out, "Goodbye!")
}

func TestMenuRepromptsMissingName(t *testing.T) {
	sl, out := runSession(t, false, "1\n \nGo\n50\nAda\nGo\n50\n5\n")
	assert.Contains(t, out, "name is required")
	assert.Equal(t, 1, sl.Len())
}
