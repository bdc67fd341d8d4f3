// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/danielhkuo/panchayat/models"
)

var (
	ErrNotRegistered    = errors.New("voter not registered")
	ErrUnknownCandidate = errors.New("unknown candidate")
	ErrAlreadyVoted     = errors.New("already voted")
)

// Session holds the mutable state of one election. Registered voters and the
// vote ledger are only reachable through its methods.
//
// A Session is not safe for concurrent use.
type Session struct {
	id         string
	candidates []models.Candidate
	registered map[string]struct{}
	ledger     map[string]string // voter_id -> candidate_id
	validate   Validator
	logger     *slog.Logger
}

type Option func(*Session)

// WithLogger sets the logger used for registration and vote events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithValidator replaces the default registration rules
func WithValidator(v Validator) Option {
	return func(s *Session) {
		if v != nil {
			s.validate = v
		}
	}
}

// New creates a session for a fixed candidate list
func New(candidates []models.Candidate, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		candidates: slices.Clone(candidates),
		registered: make(map[string]struct{}),
		ledger:     make(map[string]string),
		validate:   NewValidator(DefaultRules()),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) ID() string {
	return s.id
}

// Candidates returns a copy of the candidate list in its original order
func (s *Session) Candidates() []models.Candidate {
	return slices.Clone(s.candidates)
}

// RegisterVoter adds the voter's id to the registered set. It returns false if
// the voter fails validation or the id is already registered.
func (s *Session) RegisterVoter(voter *models.Voter) bool {
	result := s.validate(voter)
	if !result.Valid {
		s.logger.Debug("voter rejected", "session_id", s.id, "reason", result.Reason)
		return false
	}

	if _, ok := s.registered[voter.ID]; ok {
		s.logger.Debug("voter already registered", "session_id", s.id, "voter_id", voter.ID)
		return false
	}

	s.registered[voter.ID] = struct{}{}
	s.logger.Debug("voter registered", "session_id", s.id, "voter_id", voter.ID)

	return true
}

func (s *Session) IsRegistered(voterID string) bool {
	_, ok := s.registered[voterID]
	return ok
}

func (s *Session) HasVoted(voterID string) bool {
	_, ok := s.ledger[voterID]
	return ok
}

// CastVote records a single vote for a registered voter. The returned error
// wraps ErrAlreadyVoted, ErrNotRegistered or ErrUnknownCandidate, checked in
// that order.
func (s *Session) CastVote(voterID, candidateID string) (models.VoteReceipt, error) {
	if prior, ok := s.ledger[voterID]; ok {
		return s.reject(voterID, candidateID, fmt.Errorf("%w for %s", ErrAlreadyVoted, prior))
	}

	if !s.IsRegistered(voterID) {
		return s.reject(voterID, candidateID, ErrNotRegistered)
	}

	if !s.hasCandidate(candidateID) {
		return s.reject(voterID, candidateID, fmt.Errorf("%w: %s", ErrUnknownCandidate, candidateID))
	}

	s.ledger[voterID] = candidateID
	s.logger.Debug("vote recorded", "session_id", s.id, "voter_id", voterID, "candidate_id", candidateID)

	return models.VoteReceipt{VoterID: voterID, CandidateID: candidateID}, nil
}

func (s *Session) reject(voterID, candidateID string, err error) (models.VoteReceipt, error) {
	s.logger.Debug("vote rejected",
		"session_id", s.id,
		"voter_id", voterID,
		"candidate_id", candidateID,
		"error", err,
	)
	return models.VoteReceipt{}, err
}

func (s *Session) hasCandidate(candidateID string) bool {
	return lo.ContainsBy(s.candidates, func(c models.Candidate) bool {
		return c.ID == candidateID
	})
}

// CastVoteFunc casts a vote and hands the outcome to exactly one of the two
// callbacks, returning whatever that callback returns. Both run synchronously
// before CastVoteFunc returns.
func CastVoteFunc[T any](s *Session, voterID, candidateID string, onSuccess func(models.VoteReceipt) T, onError func(reason string) T) T {
	receipt, err := s.CastVote(voterID, candidateID)
	if err != nil {
		return onError(err.Error())
	}
	return onSuccess(receipt)
}

// Tally counts the ledger per candidate. Candidates without votes are absent.
func (s *Session) Tally() models.Tally {
	return lo.Reduce(lo.Values(s.ledger), func(t models.Tally, candidateID string, _ int) models.Tally {
		return TallyPure(t, candidateID)
	}, models.Tally{})
}

// Turnout returns how many registered voters have voted
func (s *Session) Turnout() (voted, registered int) {
	return len(s.ledger), len(s.registered)
}

// Results returns one record per candidate, zero-vote candidates included,
// sorted stably by order. A nil order sorts by votes, highest first.
func (s *Session) Results(order func(a, b models.Result) int) []models.Result {
	tally := s.Tally()

	results := lo.Map(s.candidates, func(c models.Candidate, _ int) models.Result {
		return models.Result{
			ID:    c.ID,
			Name:  c.Name,
			Party: c.Party,
			Votes: tally[c.ID],
		}
	})

	if order == nil {
		order = ByVotes
	}
	slices.SortStableFunc(results, order)

	return results
}

// Winner returns the leading candidate, ties going to the earlier candidate in
// the original list. It reports false when no votes have been cast.
func (s *Session) Winner() (models.Result, bool) {
	if len(s.ledger) == 0 {
		return models.Result{}, false
	}
	return s.Results(nil)[0], true
}
