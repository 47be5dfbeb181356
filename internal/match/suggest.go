package match

import (
	"sort"

	"github.com/samber/lo"
)

// DefaultMinScore is the similarity a candidate needs to be suggested.
const DefaultMinScore = 0.6

// Suggestion is a known type name ranked against an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every distinct candidate against typeName and returns those
// reaching minScore, best first. Ties are broken by name for determinism.
func Rank(typeName string, candidates []string, minScore float64) []Suggestion {
	ranked := lo.FilterMap(lo.Uniq(candidates), func(c string, _ int) (Suggestion, bool) {
		score := TypeNameScore(typeName, c)
		return Suggestion{Name: c, Score: score}, score >= minScore && c != typeName
	})

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}

// Suggest returns at most limit candidate names similar to typeName.
func Suggest(typeName string, candidates []string, limit int) []string {
	ranked := Rank(typeName, candidates, DefaultMinScore)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return lo.Map(ranked, func(s Suggestion, _ int) string { return s.Name })
}
