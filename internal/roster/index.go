package roster

import (
	"fmt"
	"strings"

	"hansard/internal/speaker"
)

// SessionIndex holds the lookup structures for one legislature. Members keeps
// insertion order; the matching engine's tie-breaking depends on it.
type SessionIndex struct {
	LegislatureID string
	Members       []*NormalizedMember

	// Collisions lists full-name and alternate-name keys that were silently
	// overwritten during construction. Overwriting is preserved for
	// compatibility with the upstream dataset; the list lets callers log it.
	Collisions []string

	byFullName map[string]*NormalizedMember
	byAltName  map[string]*NormalizedMember
	byLastName map[string][]*NormalizedMember
	byDistrict map[string][]*NormalizedMember
}

// BuildIndex filters members to the given legislature and derives the session
// lookup structures. Legislature ids are compared as strings.
func BuildIndex(members []Member, legislatureID string) *SessionIndex {
	idx := &SessionIndex{
		LegislatureID: legislatureID,
		byFullName:    make(map[string]*NormalizedMember),
		byAltName:     make(map[string]*NormalizedMember),
		byLastName:    make(map[string][]*NormalizedMember),
		byDistrict:    make(map[string][]*NormalizedMember),
	}

	for _, m := range members {
		if strings.TrimSpace(m.LegislatureID) != legislatureID {
			continue
		}

		fullNorm := speaker.NormalizeMemberName(m.FullName)
		nm := &NormalizedMember{
			FullName:     m.FullName,
			FullNameNorm: fullNorm,
			LastNameNorm: speaker.ExtractLastName(fullNorm),
			PartyID:      m.PartyID,
			Gender:       m.Gender,
			DistrictID:   m.DistrictID,
		}
		idx.Members = append(idx.Members, nm)

		if _, exists := idx.byFullName[fullNorm]; exists {
			idx.Collisions = append(idx.Collisions, fmt.Sprintf("full_name %q", fullNorm))
		}
		idx.byFullName[fullNorm] = nm

		for _, alt := range strings.Split(m.OtherNames, ";") {
			alt = strings.TrimSpace(alt)
			if alt == "" {
				continue
			}
			altNorm := speaker.NormalizeMemberName(alt)
			if altNorm == "" {
				continue
			}
			if _, exists := idx.byAltName[altNorm]; exists {
				idx.Collisions = append(idx.Collisions, fmt.Sprintf("other_name %q", altNorm))
			}
			idx.byAltName[altNorm] = nm
		}

		if nm.LastNameNorm != "" {
			idx.byLastName[nm.LastNameNorm] = append(idx.byLastName[nm.LastNameNorm], nm)
		}

		if strings.TrimSpace(m.DistrictID) != "" {
			nm.DistrictNorm = speaker.NormalizeMemberName(m.DistrictID)
			if nm.DistrictNorm != "" {
				idx.byDistrict[nm.DistrictNorm] = append(idx.byDistrict[nm.DistrictNorm], nm)
			}
		}
	}

	return idx
}

// FullName looks up a member by normalized full name.
func (s *SessionIndex) FullName(key string) (*NormalizedMember, bool) {
	m, ok := s.byFullName[key]
	return m, ok
}

// AltName looks up a member by normalized alternate name.
func (s *SessionIndex) AltName(key string) (*NormalizedMember, bool) {
	m, ok := s.byAltName[key]
	return m, ok
}

// LastName returns the bucket of members sharing a normalized last name, in
// insertion order.
func (s *SessionIndex) LastName(key string) []*NormalizedMember {
	return s.byLastName[key]
}

// District returns the bucket of members for a normalized district name, in
// insertion order.
func (s *SessionIndex) District(key string) []*NormalizedMember {
	return s.byDistrict[key]
}
