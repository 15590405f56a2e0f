package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestMatchRequestValidate_Valid(t *testing.T) {
	req := &MatchRequest{
		Candidate: Candidate{RawText: strPtr("I know Rust")},
		Jobs:      []Job{{ID: "a", Title: "Engineer", Description: "Rust"}},
	}

	assert.NoError(t, req.Validate())
}

func TestMatchRequestValidate_EmptyRawTextIsValid(t *testing.T) {
	req := &MatchRequest{
		Candidate: Candidate{RawText: strPtr("")},
	}

	assert.NoError(t, req.Validate())
}

func TestMatchRequestValidate_MissingRawText(t *testing.T) {
	req := &MatchRequest{}

	err := req.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "candidate.raw_text", verr.Field)
}

func TestMatchRequestValidate_NegativeTopK(t *testing.T) {
	req := &MatchRequest{
		Candidate: Candidate{RawText: strPtr("text")},
		TopK:      intPtr(-1),
	}

	err := req.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "top_k", verr.Field)
}

func TestMatchRequestValidate_ZeroTopK(t *testing.T) {
	req := &MatchRequest{
		Candidate: Candidate{RawText: strPtr("text")},
		TopK:      intPtr(0),
	}

	assert.NoError(t, req.Validate())
}

func TestMatchRequestValidate_JobMissingID(t *testing.T) {
	req := &MatchRequest{
		Candidate: Candidate{RawText: strPtr("text")},
		Jobs:      []Job{{Title: "No ID"}},
	}

	assert.Error(t, req.Validate())
}

func TestValidationError_Message(t *testing.T) {
	withField := &ValidationError{Field: "top_k", Message: "must be non-negative"}
	assert.Equal(t, "validation error in top_k: must be non-negative", withField.Error())

	withoutField := &ValidationError{Message: "bad shape"}
	assert.Equal(t, "validation error: bad shape", withoutField.Error())
}
