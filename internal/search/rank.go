package search

import (
	"log"
	"math"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/domain"
)

// Base weights for the heuristic score, with a three-tier decay across the
// fields each criterion is probed against.
const (
	stackWeight     = 16
	seniorityWeight = 12
	areaWeight      = 10
	workModeWeight  = 8
	locationWeight  = 8
)

type rankingFeatures struct {
	heuristic       int
	titleHits       int
	descriptionHits int
	stackHits       int
	seniorityMatch  int
	freshnessDays   int64
}

// Ranker scores and sorts candidate postings. Weights are loaded once at
// startup and never change, so a single Ranker serves all requests.
type Ranker struct {
	weights config.Ranking
	now     func() time.Time
}

func NewRanker(w config.Ranking) *Ranker {
	return &Ranker{weights: w, now: time.Now}
}

// Rank scores every candidate, drops non-positive scores and returns the
// rest sorted by score descending. The sort is stable, so among ties the
// candidate retrieval order wins — which is most-recently-collected first.
// Scoring itself is independent per candidate and runs in parallel.
func (r *Ranker) Rank(candidates []domain.JobPosting, c SearchCriteria) []domain.JobPosting {
	scores := make([]float64, len(candidates))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range candidates {
		i := i
		g.Go(func() error {
			h := r.heuristic(candidates[i], c)
			f := r.features(candidates[i], c, h)
			scores[i] = r.rerank(f)
			if r.weights.FeatureLogging {
				log.Printf(
					"level=debug msg=\"ranking\" trace_id=%s title=%q heuristic=%d title_hits=%d desc_hits=%d stack_hits=%d seniority_match=%d freshness_days=%d rerank=%.3f",
					candidates[i].IngestionTraceID, candidates[i].Title,
					f.heuristic, f.titleHits, f.descriptionHits, f.stackHits,
					f.seniorityMatch, f.freshnessDays, scores[i],
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	idx := make([]int, 0, len(candidates))
	for i := range candidates {
		if scores[i] > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	ranked := make([]domain.JobPosting, len(idx))
	for i, j := range idx {
		ranked[i] = candidates[j]
	}
	return ranked
}

// heuristic is the integer first-pass score: tiered criterion hits plus
// free-text term hits plus a one-time coverage bonus. An all-wildcard query
// flattens every candidate to 1 so the listing survives the positive-score
// cut unranked.
func (r *Ranker) heuristic(job domain.JobPosting, c SearchCriteria) int {
	title := NormalizeStrict(job.Title)
	description := NormalizeStrict(job.Description)
	stacks := NormalizeStrict(job.Stacks)
	seniority := NormalizeStrict(job.Seniority)
	workMode := NormalizeStrict(job.WorkMode)
	location := NormalizeStrict(job.Location)
	company := NormalizeStrict(job.Company)

	score := 0

	for _, stack := range sortedTerms(c.Stacks) {
		score += tokenScore(stack, stackWeight, title, stacks, description)
	}
	for _, area := range sortedAreas(c.Areas) {
		score += tokenScore(string(area), areaWeight, title, description)
	}
	for _, tag := range sortedSeniorities(c.Seniorities) {
		score += tokenScore(string(tag), seniorityWeight, seniority, title, description)
	}
	for _, mode := range sortedTerms(c.WorkModes) {
		score += tokenScore(mode, workModeWeight, workMode, title, description)
	}
	for _, term := range sortedTerms(c.LocationTerms) {
		score += tokenScore(term, locationWeight, location, description, title)
	}

	for _, term := range sortedTerms(c.FreeTextTerms) {
		score += countOccurrences(title, term)*8 +
			countOccurrences(description, term)*3 +
			countOccurrences(company, term)*4
	}

	if len(c.FreeTextTerms) > 0 {
		matched := 0
		haystack := title + " " + description
		for term := range c.FreeTextTerms {
			if strings.Contains(haystack, term) {
				matched++
			}
		}
		coverage := float64(matched) / float64(len(c.FreeTextTerms))
		score += int(math.Round(coverage * 20))
	}

	if c.HasNoCriteria() {
		score = 1
	}

	return score
}

func (r *Ranker) features(job domain.JobPosting, c SearchCriteria, heuristic int) rankingFeatures {
	title := NormalizeStrict(job.Title)
	description := NormalizeStrict(job.Description)
	stacks := NormalizeStrict(job.Stacks)
	seniority := NormalizeStrict(job.Seniority)

	f := rankingFeatures{heuristic: heuristic}

	tokens := map[string]bool{}
	for t := range c.Stacks {
		tokens[t] = true
	}
	for t := range c.FreeTextTerms {
		tokens[t] = true
	}
	for token := range tokens {
		f.titleHits += countOccurrences(title, token)
		f.descriptionHits += countOccurrences(description, token)
		f.stackHits += countOccurrences(stacks, token)
	}

	for tag := range c.Seniorities {
		if strings.Contains(seniority, string(tag)) {
			f.seniorityMatch = 1
			break
		}
	}

	// Missing collection timestamp pins the posting at the maximum age.
	f.freshnessDays = 365
	if job.CollectedAt != nil {
		days := int64(r.now().Sub(*job.CollectedAt).Hours() / 24)
		if days < 0 {
			days = 0
		}
		f.freshnessDays = days
	}

	return f
}

// rerank folds the features into the final float score. Freshness is a
// penalty: older postings rank lower, all else equal.
func (r *Ranker) rerank(f rankingFeatures) float64 {
	w := r.weights
	return float64(f.heuristic)*w.WeightHeuristic +
		float64(f.titleHits)*w.WeightTitleHits +
		float64(f.descriptionHits)*w.WeightDescriptionHits +
		float64(f.stackHits)*w.WeightStackHits +
		float64(f.seniorityMatch)*w.WeightSeniorityMatch -
		float64(f.freshnessDays)*w.WeightFreshnessDays
}

// tokenScore weighs non-overlapping occurrences of token across fields in
// priority order: full weight on the first field, then two decayed tiers.
func tokenScore(token string, baseWeight int, fields ...string) int {
	result := 0
	for i, field := range fields {
		hits := countOccurrences(field, token)
		if hits == 0 {
			continue
		}
		weight := baseWeight
		switch {
		case i == 1:
			weight = max(1, baseWeight-4)
		case i >= 2:
			weight = max(1, baseWeight-8)
		}
		result += hits * weight
	}
	return result
}

func countOccurrences(text, token string) int {
	if text == "" || token == "" {
		return 0
	}
	return strings.Count(text, token)
}
