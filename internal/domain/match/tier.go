package match

// Tier identifies the cascade strategy that produced an identity match.
// Lower values are higher-confidence strategies; TierNone sorts last.
type Tier int

const (
	// Team-validated cascade, evaluated in this order.
	TierExactFullNameTeam Tier = iota
	TierExactNameTeam
	TierCleanFullNameTeam
	TierCleanNameTeam

	// Loose cascade, used only when scraped data carries no reliable
	// team tag.
	TierLooseExactFullName
	TierLooseExactName
	TierLooseContains

	// TierNone means no strategy succeeded.
	TierNone
)

// String returns the stable wire/report label for the tier.
func (t Tier) String() string {
	switch t {
	case TierExactFullNameTeam:
		return "exact-fullname-team"
	case TierExactNameTeam:
		return "exact-name-team"
	case TierCleanFullNameTeam:
		return "clean-fullname-team"
	case TierCleanNameTeam:
		return "clean-name-team"
	case TierLooseExactFullName:
		return "loose-exact-fullname"
	case TierLooseExactName:
		return "loose-exact-name"
	case TierLooseContains:
		return "loose-contains"
	case TierNone:
		return "no-match"
	default:
		return "unknown"
	}
}

// TeamValidated reports whether the tier comes from the team-validated
// cascade. Loose matches must stay visibly distinguished in reporting.
func (t Tier) TeamValidated() bool {
	switch t {
	case TierExactFullNameTeam, TierExactNameTeam, TierCleanFullNameTeam, TierCleanNameTeam:
		return true
	default:
		return false
	}
}

// Matched reports whether the tier represents any successful match.
func (t Tier) Matched() bool {
	return t != TierNone
}

// Stronger returns the higher-confidence of two tiers.
func Stronger(a, b Tier) Tier {
	if a < b {
		return a
	}
	return b
}
