package voice

import (
	"math/rand/v2"
	"strings"

	"github.com/myrjola/whodunit/internal/models"
)

// Name and role indicator lists for gender inference. This is a small,
// anglophone-biased heuristic. The female-before-male check order is
// observable behaviour, so extend the lists with care.
var (
	femaleNameIndicators = []string{
		"sarah", "emma", "laura", "alice", "mary", "anna", "sophia", "olivia",
		"emily", "jessica", "lisa", "amy", "diana", "elizabeth", "jennifer", "eleanor",
	}
	maleNameIndicators = []string{
		"mike", "john", "david", "james", "robert", "william", "richard", "thomas",
		"charles", "daniel", "matthew", "mark", "paul", "steven", "andrew", "bartholomew", "barty",
	}
	femaleRoleKeywords = []string{"lady", "woman", "miss", "mrs", "ms", "mother", "wife", "sister", "daughter"}
	maleRoleKeywords   = []string{"mr", "sir", "lord", "father", "husband", "brother", "man", "son"}
)

// Selector picks voices from a catalog. The random source is injectable so
// tests can pin the final pick; the candidate filtering itself is deterministic.
type Selector struct {
	catalog []models.VoiceProfile
	intn    func(n int) int
}

func NewSelector(catalog []models.VoiceProfile) *Selector {
	return &Selector{
		catalog: catalog,
		intn:    rand.IntN,
	}
}

// NewSelectorWithRand constructs a Selector with a custom random source.
func NewSelectorWithRand(catalog []models.VoiceProfile, intn func(n int) int) *Selector {
	return &Selector{
		catalog: catalog,
		intn:    intn,
	}
}

// Select picks a voice ID for a character. The personality traits are accepted
// for future weighting but do not influence the choice yet; selection layers
// explicit gender, name inference, and role inference over the catalog and
// picks uniformly at random among the remaining candidates.
func (s *Selector) Select(name, role string, _ []string, gender string) string {
	candidates := s.Candidates(name, role, gender)
	return candidates[s.intn(len(candidates))].ID
}

// Candidates returns the deterministic candidate set for the given signals.
// The returned slice is never empty as long as the catalog is not.
func (s *Selector) Candidates(name, role, gender string) []models.VoiceProfile {
	resolved := normalizeGender(gender)
	if resolved == "" {
		resolved = inferFromName(name)
	}
	if resolved == "" {
		resolved = inferFromRole(role)
	}

	var candidates []models.VoiceProfile
	if resolved != "" {
		candidates = s.filterGender(resolved)
	} else {
		// Unknown gender prefers neutral voices before giving up on filtering.
		candidates = s.filterGender(models.GenderNeutral)
	}
	if len(candidates) == 0 {
		candidates = s.catalog
	}
	return candidates
}

func (s *Selector) filterGender(gender models.Gender) []models.VoiceProfile {
	var matching []models.VoiceProfile
	for _, profile := range s.catalog {
		if profile.Gender == gender {
			matching = append(matching, profile)
		}
	}
	return matching
}

// normalizeGender maps an explicit gender signal to a known value. Anything
// unrecognized is treated as absent.
func normalizeGender(gender string) models.Gender {
	switch strings.ToLower(gender) {
	case string(models.GenderMale):
		return models.GenderMale
	case string(models.GenderFemale):
		return models.GenderFemale
	case string(models.GenderNeutral):
		return models.GenderNeutral
	}
	return ""
}

// inferFromName checks the name against common first-name substrings.
// Female indicators win when both match.
func inferFromName(name string) models.Gender {
	lower := strings.ToLower(name)
	for _, indicator := range femaleNameIndicators {
		if strings.Contains(lower, indicator) {
			return models.GenderFemale
		}
	}
	for _, indicator := range maleNameIndicators {
		if strings.Contains(lower, indicator) {
			return models.GenderMale
		}
	}
	return ""
}

// inferFromRole checks the role description for gendered keywords.
// Female keywords win when both match.
func inferFromRole(role string) models.Gender {
	lower := strings.ToLower(role)
	for _, keyword := range femaleRoleKeywords {
		if strings.Contains(lower, keyword) {
			return models.GenderFemale
		}
	}
	for _, keyword := range maleRoleKeywords {
		if strings.Contains(lower, keyword) {
			return models.GenderMale
		}
	}
	return ""
}
