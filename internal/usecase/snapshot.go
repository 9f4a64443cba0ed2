package usecase

import (
	"maps"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"
)

func cloneJob(p job.Posting) job.Posting {
	p.Skills = append([]string{}, p.Skills...)
	if p.Metadata != nil {
		p.Metadata = maps.Clone(p.Metadata)
	}
	return p
}

func cloneJobs(ps []job.Posting) []job.Posting {
	out := make([]job.Posting, len(ps))
	for i, p := range ps {
		out[i] = cloneJob(p)
	}
	return out
}

func cloneCandidate(c candidate.Candidate) candidate.Candidate {
	c.Skills = append([]string{}, c.Skills...)
	c.Experience = append([]string{}, c.Experience...)
	c.Education = append([]candidate.Education{}, c.Education...)
	return c
}

func cloneCandidates(cs []candidate.Candidate) []candidate.Candidate {
	out := make([]candidate.Candidate, len(cs))
	for i, c := range cs {
		out[i] = cloneCandidate(c)
	}
	return out
}

func cloneMatch(m match.Match) match.Match {
	m.MatchDetails = append([]match.Detail{}, m.MatchDetails...)
	return m
}

func cloneMatches(ms []match.Match) []match.Match {
	out := make([]match.Match, len(ms))
	for i, m := range ms {
		out[i] = cloneMatch(m)
	}
	return out
}
