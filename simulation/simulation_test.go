// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulation

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoad(t *testing.T) {
	path := testutil.WriteFile(t, "scenario.yaml", testutil.ScenarioYAML)

	sc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, testutil.Candidates(), sc.Candidates)
	assert.Len(t, sc.Voters, 3)
	assert.Len(t, sc.Votes, 3)
	require.NotNil(t, sc.Regions)
	assert.Equal(t, "District", sc.Regions.Name)
	assert.Len(t, sc.Regions.SubRegions, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/scenario.yaml")
	assert.Error(t, err)
}

func TestLoadRegions(t *testing.T) {
	path := testutil.WriteFile(t, "regions.yaml", `
name: District
votes: 5
sub_regions:
  - {name: North, votes: 3, sub_regions: []}
  - name: South
    votes: 2
    sub_regions:
      - {name: Harbour, votes: 1}
`)

	root, err := LoadRegions(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(testutil.RegionTree(), root, cmpopts.EquateEmpty()), "region tree mismatch")

	_, err = LoadRegions(testutil.WriteFile(t, "bad.yaml", "name: [unclosed"))
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "no candidates",
			input:   "voters: [{id: V1, name: Mohan, age: 25}]\ncandidates: []\n",
			wantErr: ErrNoCandidates,
		},
		{
			name:    "duplicate candidate",
			input:   "candidates: [{id: C1, name: Ram}, {id: C1, name: Sita}]\n",
			wantErr: ErrDuplicateCandidate,
		},
		{
			name:  "unknown key",
			input: "candidates: [{id: C1, name: Ram}]\nballots: []\n",
		},
		{
			name:  "malformed yaml",
			input: "candidates: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRun(t *testing.T) {
	sc, err := Decode(strings.NewReader(testutil.ScenarioYAML))
	require.NoError(t, err)

	report, err := NewRunner(testutil.GetTestConfig(), quietLogger()).Run(sc)
	require.NoError(t, err)

	assert.NotEmpty(t, report.SessionID)

	wantRegistrations := []models.Registration{
		{VoterID: "V1", Accepted: true},
		{VoterID: "V2", Accepted: true},
		{VoterID: "V3", Accepted: false},
	}
	assert.Equal(t, wantRegistrations, report.Registrations)

	wantVotes := []models.VoteOutcome{
		{VoterID: "V1", CandidateID: "C1", Accepted: true},
		{VoterID: "V2", CandidateID: "C1", Accepted: true},
		{VoterID: "V1", CandidateID: "C2", Reason: "already voted for C1"},
	}
	assert.Equal(t, wantVotes, report.Votes)

	require.Len(t, report.Results, 2)
	assert.Equal(t, models.Result{ID: "C1", Name: "Ram", Party: "A", Votes: 2}, report.Results[0])
	assert.Equal(t, 0, report.Results[1].Votes)

	require.NotNil(t, report.Winner)
	assert.Equal(t, "C1", report.Winner.ID)

	assert.Equal(t, 2, report.Turnout)
	assert.Equal(t, 2, report.Registered)
	assert.Equal(t, 11, report.RegionTotal)
	assert.Len(t, report.Regions, 4)
}

func TestRunWithoutVotes(t *testing.T) {
	sc := models.Scenario{Candidates: testutil.Candidates()}

	report, err := NewRunner(testutil.GetTestConfig(), quietLogger()).Run(sc)
	require.NoError(t, err)

	assert.Nil(t, report.Winner)
	assert.Len(t, report.Results, 2)
	assert.Zero(t, report.RegionTotal)
	assert.Empty(t, report.Regions)
}

func TestRunSortByName(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.Sort = "name"

	sc := models.Scenario{Candidates: []models.Candidate{
		{ID: "C1", Name: "Zoya", Party: "B"},
		{ID: "C2", Name: "Arjun", Party: "A"},
	}}

	report, err := NewRunner(cfg, quietLogger()).Run(sc)
	require.NoError(t, err)
	assert.Equal(t, "Arjun", report.Results[0].Name)
}

func TestRunRejectsUnknownSort(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.Sort = "age"

	_, err := NewRunner(cfg, quietLogger()).Run(models.Scenario{Candidates: testutil.Candidates()})
	assert.Error(t, err)
}
