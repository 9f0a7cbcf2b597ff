package generator

import "alcyxob/fitplan/internal/domain"

var activityTiers = map[domain.ActivityLevel]domain.Tier{
	domain.ActivitySedentary:        domain.TierBeginner,
	domain.ActivityLightlyActive:    domain.TierBeginner,
	domain.ActivityModeratelyActive: domain.TierIntermediate,
	domain.ActivityVeryActive:       domain.TierIntermediate,
	domain.ActivityExtraActive:      domain.TierAdvanced,
}

// ClassifyFitnessLevel maps activity level and age to a skill tier.
// Users over 65 are always beginners; users over 55 are never advanced.
func ClassifyFitnessLevel(activity domain.ActivityLevel, age int) domain.Tier {
	tier, ok := activityTiers[activity]
	if !ok {
		tier = domain.TierBeginner
	}
	switch {
	case age > 65:
		return domain.TierBeginner
	case age > 55 && tier == domain.TierAdvanced:
		return domain.TierIntermediate
	}
	return tier
}

// allowedLevels is the inclusive tier hierarchy used for catalog eligibility.
func allowedLevels(t domain.Tier) []domain.Tier {
	switch t {
	case domain.TierAdvanced:
		return []domain.Tier{domain.TierBeginner, domain.TierIntermediate, domain.TierAdvanced}
	case domain.TierIntermediate:
		return []domain.Tier{domain.TierBeginner, domain.TierIntermediate}
	default:
		return []domain.Tier{domain.TierBeginner}
	}
}
