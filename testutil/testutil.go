// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
)

// ScenarioYAML is a small election with one rejected registration and one
// rejected vote
const ScenarioYAML = `
candidates:
  - {id: C1, name: Ram, party: A}
  - {id: C2, name: Sita, party: B}
voters:
  - {id: V1, name: Mohan, age: 25}
  - {id: V2, name: Geeta, age: 31}
  - {id: V3, name: Chotu, age: 12}
votes:
  - {voter: V1, candidate: C1}
  - {voter: V2, candidate: C1}
  - {voter: V1, candidate: C2}
regions:
  name: District
  votes: 5
  sub_regions:
    - {name: North, votes: 3}
    - name: South
      votes: 2
      sub_regions:
        - {name: Harbour, votes: 1}
`

// Candidates returns the two-candidate list used across tests
func Candidates() []models.Candidate {
	return []models.Candidate{
		{ID: "C1", Name: "Ram", Party: "A"},
		{ID: "C2", Name: "Sita", Party: "B"},
	}
}

// Voters returns voters that pass the default registration rules
func Voters() []models.Voter {
	return []models.Voter{
		{ID: "V1", Name: "Mohan", Age: 25},
		{ID: "V2", Name: "Geeta", Age: 31},
		{ID: "V3", Name: "Arjun", Age: 44},
	}
}

// RegionTree returns a tree whose votes sum to 11
func RegionTree() *models.RegionNode {
	return &models.RegionNode{
		Name:  "District",
		Votes: 5,
		SubRegions: []*models.RegionNode{
			{Name: "North", Votes: 3, SubRegions: []*models.RegionNode{}},
			{Name: "South", Votes: 2, SubRegions: []*models.RegionNode{
				{Name: "Harbour", Votes: 1, SubRegions: []*models.RegionNode{}},
			}},
		},
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		LogLevel: "error",
		Format:   cliparse.FormatText,
		Sort:     election.SortVotes,
	}
}

// RegisterVoters registers every voter, failing the test if any is refused
func RegisterVoters(t *testing.T, s *election.Session, voters ...models.Voter) {
	t.Helper()

	for _, v := range voters {
		if !s.RegisterVoter(&v) {
			t.Fatalf("Failed to register voter %s", v.ID)
		}
	}
}

// CastVotes casts voter_id -> candidate_id votes, failing the test on any error
func CastVotes(t *testing.T, s *election.Session, votes map[string]string) {
	t.Helper()

	for voterID, candidateID := range votes {
		if _, err := s.CastVote(voterID, candidateID); err != nil {
			t.Fatalf("Failed to cast vote %s -> %s: %v", voterID, candidateID, err)
		}
	}
}

// WriteFile writes contents to name inside a fresh temp dir and returns the path
func WriteFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}

	return path
}
