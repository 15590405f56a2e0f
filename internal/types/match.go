// Package types defines the request, response, and domain types shared
// across the matching engine.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Candidate is the profile supplied with one match request. It is ephemeral:
// built from a single request and discarded after scoring. RawText is a
// pointer so a structurally missing field can be told apart from a valid
// empty profile.
type Candidate struct {
	Name    string  `json:"name,omitempty"`
	RawText *string `json:"raw_text" validate:"required"`
}

// Job is one posting to score the candidate against. Skills are derived from
// RequiredSkills plus whatever the extractor recognizes in Description.
type Job struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// MatchRequest is the body of the match operation: one candidate against a
// list of jobs, optionally truncated to the top-k results.
type MatchRequest struct {
	Candidate Candidate `json:"candidate"`
	Jobs      []Job     `json:"jobs" validate:"dive"`
	TopK      *int      `json:"top_k,omitempty"`
}

// MatchResult is one scored job. Immutable once created. MatchedSkills is
// kept in lexicographic order so serialized output is stable.
type MatchResult struct {
	JobID         string   `json:"job_id"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	Explanation   string   `json:"explanation"`
}

// Validate validates the MatchRequest using the validator. Rejection happens
// before any extraction or scoring runs.
func (r *MatchRequest) Validate() error {
	if r.Candidate.RawText == nil {
		return &ValidationError{Field: "candidate.raw_text", Message: "is required"}
	}
	if r.TopK != nil && *r.TopK < 0 {
		return &ValidationError{Field: "top_k", Message: "must be non-negative"}
	}
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}
