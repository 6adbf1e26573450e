package match

import (
	"fmt"

	"github.com/gastromap/gastromap-backend/pkg/geo"
)

// Reason identifies which rule decided a match.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonSamePhone    Reason = "same_phone"
	ReasonSameSpot     Reason = "same_spot"
	ReasonNearSimilar  Reason = "near_similar_name"
	ReasonCloseMatched Reason = "close_very_similar_name"
)

// Thresholds are the distance/similarity cut-offs for the match rules.
// Zero values fall back to the defaults below.
type Thresholds struct {
	SameSpotMeters    float64 `default:"20"`
	NearMeters        float64 `default:"50"`
	NearSimilarity    float64 `default:"0.5"`
	LooseMeters       float64 `default:"100"`
	LooseSimilarity   float64 `default:"0.8"`
	CandidateBoxMeter float64 `default:"150"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SameSpotMeters:    20,
		NearMeters:        50,
		NearSimilarity:    0.5,
		LooseMeters:       100,
		LooseSimilarity:   0.8,
		CandidateBoxMeter: 150,
	}
}

// Candidate is the slice of a restaurant record the resolver needs.
type Candidate struct {
	ID        uint
	Name      string
	Phone     string
	Latitude  float64
	Longitude float64
}

// HasCoordinates reports whether distance rules apply to this candidate.
func (c Candidate) HasCoordinates() bool {
	return c.Latitude != 0 && c.Longitude != 0
}

// Match is a successful resolution against one existing record.
type Match struct {
	ID         uint
	Distance   float64
	Similarity float64
	Reason     Reason
}

// Describe renders the fired rule as an operator-readable string for the
// duplicate review UI.
func (m Match) Describe(phone string) string {
	switch m.Reason {
	case ReasonSamePhone:
		return fmt.Sprintf("same phone number: %s", phone)
	case ReasonSameSpot:
		return fmt.Sprintf("same spot: %.0fm apart", m.Distance)
	case ReasonNearSimilar:
		return fmt.Sprintf("similar names (%.0f%%) %.0fm apart", m.Similarity*100, m.Distance)
	case ReasonCloseMatched:
		return fmt.Sprintf("nearly identical names (%.0f%%) %.0fm apart", m.Similarity*100, m.Distance)
	default:
		return ""
	}
}

// Resolver applies the consolidation match policy.
type Resolver struct {
	thresholds Thresholds
}

func NewResolver(thresholds Thresholds) *Resolver {
	return &Resolver{thresholds: thresholds}
}

// Compare evaluates a single candidate pair. Rule precedence: shared phone
// number, then distance under the same-spot cut-off regardless of name, then
// the two distance+similarity bands. Missing coordinates on either side
// disqualify the distance rules.
func (r *Resolver) Compare(candidate, existing Candidate) (Match, bool) {
	if candidate.Phone != "" && existing.Phone != "" &&
		NormalizePhone(candidate.Phone) == NormalizePhone(existing.Phone) {
		m := Match{ID: existing.ID, Reason: ReasonSamePhone, Similarity: NameSimilarity(candidate.Name, existing.Name)}
		if candidate.HasCoordinates() && existing.HasCoordinates() {
			m.Distance = geo.DistanceMeters(candidate.Latitude, candidate.Longitude, existing.Latitude, existing.Longitude)
		}

		return m, true
	}

	if !candidate.HasCoordinates() || !existing.HasCoordinates() {
		return Match{}, false
	}

	distance := geo.DistanceMeters(candidate.Latitude, candidate.Longitude, existing.Latitude, existing.Longitude)
	similarity := NameSimilarity(candidate.Name, existing.Name)
	m := Match{ID: existing.ID, Distance: distance, Similarity: similarity}

	switch {
	case distance < r.thresholds.SameSpotMeters:
		m.Reason = ReasonSameSpot
	case distance < r.thresholds.NearMeters && similarity > r.thresholds.NearSimilarity:
		m.Reason = ReasonNearSimilar
	case distance < r.thresholds.LooseMeters && similarity > r.thresholds.LooseSimilarity:
		m.Reason = ReasonCloseMatched
	default:
		return Match{}, false
	}

	return m, true
}

// FindMatch resolves a candidate against existing records. When several
// records pass the thresholds the nearest one wins, ties broken by higher
// name similarity and then lower id, so resolution is deterministic.
func (r *Resolver) FindMatch(candidate Candidate, existing []Candidate) (Match, bool) {
	var (
		best  Match
		found bool
	)

	for _, record := range existing {
		if record.ID == candidate.ID && candidate.ID != 0 {
			continue
		}

		m, ok := r.Compare(candidate, record)
		if !ok {
			continue
		}

		if !found || betterMatch(m, best) {
			best = m
			found = true
		}
	}

	return best, found
}

func betterMatch(a, b Match) bool {
	// Phone equality outranks every proximity rule, mirroring resolution
	// precedence in Compare.
	if (a.Reason == ReasonSamePhone) != (b.Reason == ReasonSamePhone) {
		return a.Reason == ReasonSamePhone
	}

	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}

	if a.Similarity != b.Similarity {
		return a.Similarity > b.Similarity
	}

	return a.ID < b.ID
}
