// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements an in-memory vote tally for a single election.

# Sessions

A Session is created with a fixed candidate list:

	s := election.New(candidates)

Voters register, then cast at most one vote each:

	s.RegisterVoter(&models.Voter{ID: "V1", Name: "Mohan", Age: 25})
	receipt, err := s.CastVote("V1", "C1")

CastVote reports failures as errors that wrap ErrAlreadyVoted,
ErrNotRegistered or ErrUnknownCandidate. Callers preferring callbacks use
CastVoteFunc, which invokes exactly one of onSuccess or onError and returns
its value:

	msg := election.CastVoteFunc(s, "V1", "C1",
		func(r models.VoteReceipt) string { return "voted!" },
		func(reason string) string { return "error: " + reason },
	)

# Results

Results and Winner are derived from the ledger on every call:

	results := s.Results(nil)          // votes, highest first
	results = s.Results(election.ByName)
	winner, ok := s.Winner()           // ok is false until a vote is cast

Sorting is stable, so ties keep the original candidate order.

# Validation

NewValidator turns declarative rules into a reusable predicate:

	check := election.NewValidator(models.ValidationRules{
		MinAge:         18,
		RequiredFields: []string{"id", "name", "age"},
	})
	result := check(voter)

A required field holding its zero value is treated as missing.

# Pure Helpers

CountVotesInRegions sums a region tree of any depth. TallyPure returns a new
tally with one candidate incremented, leaving its input untouched. Both are
safe for concurrent use; a Session is not.
*/
package election
