// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulation

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
)

var (
	ErrNoCandidates       = errors.New("scenario has no candidates")
	ErrDuplicateCandidate = errors.New("duplicate candidate id")
)

// Load reads and checks a scenario file
func Load(path string) (models.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Scenario{}, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a YAML scenario. Unknown keys are rejected so typos in a
// hand-written file do not silently drop data.
func Decode(r io.Reader) (models.Scenario, error) {
	var sc models.Scenario

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return models.Scenario{}, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if err := Check(sc); err != nil {
		return models.Scenario{}, err
	}

	return sc, nil
}

// LoadRegions reads a standalone region tree
func LoadRegions(path string) (*models.RegionNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open region tree: %w", err)
	}
	defer f.Close()

	var root models.RegionNode

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse region tree: %w", err)
	}

	return &root, nil
}

// Check validates the candidate list of a scenario
func Check(sc models.Scenario) error {
	if len(sc.Candidates) == 0 {
		return ErrNoCandidates
	}

	ids := lo.Map(sc.Candidates, func(c models.Candidate, _ int) string { return c.ID })
	if dupes := lo.FindDuplicates(ids); len(dupes) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateCandidate, dupes[0])
	}

	return nil
}

type Runner struct {
	cfg    cliparse.Config
	logger *slog.Logger
}

func NewRunner(cfg cliparse.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run plays a scenario against a fresh session: every voter registers, then
// every vote is cast in file order.
func (r *Runner) Run(sc models.Scenario) (models.Report, error) {
	order, err := election.OrderFor(r.cfg.Sort)
	if err != nil {
		return models.Report{}, err
	}

	s := election.New(sc.Candidates, election.WithLogger(r.logger))

	report := models.Report{SessionID: s.ID()}

	for _, v := range sc.Voters {
		report.Registrations = append(report.Registrations, models.Registration{
			VoterID:  v.ID,
			Accepted: s.RegisterVoter(&v),
		})
	}

	for _, req := range sc.Votes {
		outcome := election.CastVoteFunc(s, req.Voter, req.Candidate,
			func(receipt models.VoteReceipt) models.VoteOutcome {
				return models.VoteOutcome{
					VoterID:     receipt.VoterID,
					CandidateID: receipt.CandidateID,
					Accepted:    true,
				}
			},
			func(reason string) models.VoteOutcome {
				return models.VoteOutcome{
					VoterID:     req.Voter,
					CandidateID: req.Candidate,
					Reason:      reason,
				}
			},
		)
		report.Votes = append(report.Votes, outcome)
	}

	report.Results = s.Results(order)
	if winner, ok := s.Winner(); ok {
		report.Winner = &winner
	}
	report.Turnout, report.Registered = s.Turnout()

	if sc.Regions != nil {
		report.RegionTotal = election.CountVotesInRegions(sc.Regions)
		report.Regions = election.RegionTotals(sc.Regions)
	}

	r.logger.Info("simulation finished",
		"session_id", report.SessionID,
		"registered", report.Registered,
		"turnout", report.Turnout,
		"rejected_votes", lo.CountBy(report.Votes, func(o models.VoteOutcome) bool { return !o.Accepted }),
	)

	return report, nil
}
