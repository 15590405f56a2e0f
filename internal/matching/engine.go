// Package matching orchestrates one match request end to end: candidate
// extraction, per-job scoring, and deterministic ranking.
package matching

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/may-ank-dot/MatchingEngine/internal/ranking"
	"github.com/may-ank-dot/MatchingEngine/internal/scoring"
	"github.com/may-ank-dot/MatchingEngine/internal/skills"
	"github.com/may-ank-dot/MatchingEngine/internal/types"
)

// Engine scores a candidate against job postings and returns a ranked list.
// It holds only read-only collaborators, so a single Engine is safe for
// concurrent use across requests.
type Engine struct {
	catalog *skills.Catalog
	scorer  *scoring.Scorer
	logger  *zap.Logger
}

// New creates an engine. A nil catalog falls back to the built-in skill
// patterns; a nil logger disables logging.
func New(catalog *skills.Catalog, logger *zap.Logger) *Engine {
	if catalog == nil {
		catalog = skills.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog: catalog,
		scorer:  scoring.NewScorer(),
		logger:  logger,
	}
}

// Match validates the request, scores every job concurrently, and returns
// the deterministically ranked top-k results. Scoring jobs is independent
// per job; ranking runs single-threaded afterwards so parallelism is never
// observable in the output order.
func (e *Engine) Match(ctx context.Context, req *types.MatchRequest) ([]types.MatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidate := e.catalog.Extract(*req.Candidate.RawText)

	results := make([]types.MatchResult, len(req.Jobs))
	var g errgroup.Group
	for i, job := range req.Jobs {
		g.Go(func() error {
			jobSkills := skills.NewSet(job.RequiredSkills...).Union(e.catalog.Extract(job.Description))
			scored := e.scorer.Score(candidate, jobSkills)
			results[i] = types.MatchResult{
				JobID:         job.ID,
				Score:         scored.Composite,
				MatchedSkills: scored.Matched.Sorted(),
				Explanation:   scored.Explanation,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring jobs: %w", err)
	}

	ranked, err := ranking.Rank(results, req.TopK)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("match complete",
		zap.Int("jobs", len(req.Jobs)),
		zap.Int("candidate_skills", len(candidate)),
		zap.Int("returned", len(ranked)),
	)
	return ranked, nil
}
