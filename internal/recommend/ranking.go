package recommend

import "sort"

// Rank orders recommendations for presentation and truncates to topN.
//
// Priority items with a match score below the boost threshold receive a
// flat combined-score boost: a capable featured project may be
// under-scored by generic matching, and the boost keeps it from being
// buried. The priority partition is concatenated ahead of the rest
// before the final stable sort so equally-scored priority items win ties.
func Rank(recs []Recommendation, topN int, opts Options) []Recommendation {
	if len(recs) == 0 {
		return nil
	}

	var priority, other []Recommendation
	for _, r := range recs {
		if r.IsPriority {
			priority = append(priority, r)
		} else {
			other = append(other, r)
		}
	}

	for i := range priority {
		if priority[i].MatchScore < opts.BoostThreshold {
			priority[i].CombinedScore += opts.BoostAmount
		}
	}

	ranked := make([]Recommendation, 0, len(recs))
	ranked = append(ranked, priority...)
	ranked = append(ranked, other...)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CombinedScore > ranked[j].CombinedScore
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
