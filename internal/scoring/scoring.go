// Package scoring computes similarity between candidate and job skill sets
// and blends weighted signals into one composite score.
package scoring

import (
	"fmt"
	"math"

	"github.com/may-ank-dot/MatchingEngine/internal/skills"
)

// Weights for the composite blend. Experience and other are reserved
// extension points and currently always contribute zero.
const (
	skillWeight      = 0.60
	experienceWeight = 0.25
	otherWeight      = 0.15
)

// Signal is one weighted scoring contributor over a candidate/job pair.
// Implementations must be pure and return a value in [0,1].
type Signal struct {
	Name   string
	Weight float64
	Score  func(candidate, job skills.Set) float64
}

// Result carries the outcome of scoring one job against a candidate.
type Result struct {
	Similarity  float64
	Composite   float64
	Matched     skills.Set
	Explanation string
}

// Jaccard returns |A∩B| / |A∪B|. Two empty sets are a perfect vacuous
// match, 1.0.
func Jaccard(a, b skills.Set) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	union := len(a.Union(b))
	if union == 0 {
		return 0.0
	}
	return float64(len(a.Intersect(b))) / float64(union)
}

// Scorer blends an ordered list of weighted signals into one composite score
// on a 0-100 scale. A Scorer holds no mutable state and is safe for
// concurrent use.
type Scorer struct {
	signals []Signal
}

// NewScorer returns a scorer with the canonical signal list: skill
// similarity at 0.60 plus the experience (0.25) and other (0.15)
// placeholders. Future signals slot in here without changing the Score
// contract.
func NewScorer() *Scorer {
	return &Scorer{
		signals: []Signal{
			{Name: "skill_similarity", Weight: skillWeight, Score: Jaccard},
			{Name: "experience", Weight: experienceWeight, Score: zeroSignal},
			{Name: "other", Weight: otherWeight, Score: zeroSignal},
		},
	}
}

// zeroSignal holds a blend slot open until real data feeds it.
func zeroSignal(_, _ skills.Set) float64 {
	return 0.0
}

// Score computes similarity, matched skills, and the composite for one
// candidate/job pair. The composite is scaled to 0-100 exactly once and
// rounded half away from zero to two decimals; with the placeholder signals
// at zero it equals 60 * similarity.
func (s *Scorer) Score(candidate, job skills.Set) Result {
	similarity := Jaccard(candidate, job)

	blend := 0.0
	for _, signal := range s.signals {
		blend += signal.Weight * signal.Score(candidate, job)
	}

	return Result{
		Similarity:  similarity,
		Composite:   round2(100.0 * blend),
		Matched:     candidate.Intersect(job),
		Explanation: fmt.Sprintf("skill_jaccard=%.3f", similarity),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
