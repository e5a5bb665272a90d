// Package scoring derives the cultural authenticity score and the commercial
// relevance tier from a correction run. Both are pure functions of the
// [types.CorrectionResult].
package scoring

import (
	"fmt"

	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

const (
	// correctionPenalty is subtracted for every applied correction.
	correctionPenalty = 5

	// identityBonus is added for every correction of a highest-significance
	// iwi or governance name. It outweighs the penalty.
	identityBonus = 8

	perfectDemoBonus = 10

	tierAThreshold = 25
	tierBThreshold = 12
)

// businessPoints are the commercial points per business tier.
var businessPoints = map[lexicon.BusinessTier]int{
	lexicon.BusinessTierA: 15,
	lexicon.BusinessTierB: 8,
	lexicon.BusinessTierC: 3,
}

// Cultural scores the authenticity of a correction run. Every applied
// correction costs a little, since the input needed fixing; recognising an
// authoritative iwi or governance name earns more than it costs.
func Cultural(res types.CorrectionResult) types.CulturalScore {
	score := 100
	reasons := []string{}
	for _, rec := range res.Records {
		score -= correctionPenalty
		reasons = append(reasons, fmt.Sprintf("corrected %q to %q (-%d)", rec.Original, rec.Corrected, correctionPenalty))
		if rec.Entry.Significance == lexicon.SignificanceHighest && rec.Entry.Category.IsIdentity() {
			score += identityBonus
			reasons = append(reasons, fmt.Sprintf("authoritative identity term %q (+%d)", rec.Corrected, identityBonus))
		}
	}
	return types.CulturalScore{Score: types.Clamp100(score), Reasons: reasons}
}

// Commercial scores the business relevance of a correction run from the
// tourism businesses it recognised, whether or not they needed correcting.
// One perfect-demo business adds a bonus once per run.
func Commercial(res types.CorrectionResult) types.CommercialScore {
	total := 0
	reasoning := []string{}
	perfect := false
	for _, m := range res.Matches {
		if m.Entry.Category != lexicon.CategoryBusiness {
			continue
		}
		if pts, ok := businessPoints[m.Entry.BusinessTier]; ok {
			total += pts
			reasoning = append(reasoning, fmt.Sprintf("tier %s business: %s (+%d)", m.Entry.BusinessTier, m.Entry.Correct, pts))
		}
		if m.Entry.PerfectDemo && !perfect {
			perfect = true
			total += perfectDemoBonus
			reasoning = append(reasoning, fmt.Sprintf("perfect demo match: %s (+%d)", m.Entry.Correct, perfectDemoBonus))
		}
	}

	total = types.Clamp100(total)
	return types.CommercialScore{Score: total, Tier: Tier(total), Reasoning: reasoning}
}

// Tier classifies a commercial score.
func Tier(score int) types.CommercialTier {
	switch {
	case score >= tierAThreshold:
		return types.CommercialTierA
	case score >= tierBThreshold:
		return types.CommercialTierB
	}
	return types.CommercialTierC
}
