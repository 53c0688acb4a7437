package features

import "math"

const (
	// BallsPerInnings is the legal-delivery budget of a T20 innings.
	BallsPerInnings = 120
	// WicketsPerInnings is the wicket budget of an innings.
	WicketsPerInnings = 10
	// MomentumWindow is the trailing delivery count for momentum sums.
	MomentumWindow = 30
)

// LegalBallsFromLabel inverts the ingestion ball label: the integer part
// is the count of completed overs, the tenths digit the legal deliveries
// within the current over. 7.3 means 7*6+3 = 45 legal balls bowled.
func LegalBallsFromLabel(ball float64) int {
	over := int(ball)
	counter := int(math.Round((ball - float64(over)) * 10))
	return over*6 + counter
}

// BallsLeft returns the remaining legal-delivery budget.
func BallsLeft(legalBallsBowled int) int {
	return BallsPerInnings - legalBallsBowled
}

// WicketsLeft returns the remaining wicket budget.
func WicketsLeft(wicketsFallen int) int {
	return WicketsPerInnings - wicketsFallen
}

// CurrentRunRate is runs per six legal deliveries bowled so far.
// Zero legal balls (or any non-finite result) yields exactly 0.
func CurrentRunRate(currentScore, legalBallsBowled int) float64 {
	if legalBallsBowled <= 0 {
		return 0
	}
	crr := float64(currentScore*6) / float64(legalBallsBowled)
	if math.IsNaN(crr) || math.IsInf(crr, 0) {
		return 0
	}
	return crr
}

// DerivedState is the serving-time reconstruction of innings state from
// the reduced prediction input. The formulas are shared with training
// synthesis so served feature values match training rows bit for bit.
type DerivedState struct {
	LegalBallsBowled int
	BallsLeft        int
	WicketsLeft      int
	CRR              float64
}

// DeriveState recomputes the derived features from a ball label, current
// score, and wickets fallen.
func DeriveState(ball float64, currentScore, wicketsFallen int) DerivedState {
	legal := LegalBallsFromLabel(ball)
	return DerivedState{
		LegalBallsBowled: legal,
		BallsLeft:        BallsLeft(legal),
		WicketsLeft:      WicketsLeft(wicketsFallen),
		CRR:              CurrentRunRate(currentScore, legal),
	}
}
