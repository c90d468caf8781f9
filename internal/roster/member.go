package roster

// Member is one roster row: a legislature member as recorded in the reference
// dataset. OtherNames carries semicolon-delimited alternate display names.
// LegislatureID is kept as a string to tolerate mixed numeric and text
// representations across datasets.
type Member struct {
	FullName      string
	OtherNames    string
	PartyID       string
	Gender        string
	DistrictID    string
	LegislatureID string
}

// NormalizedMember is the index-owned view of a member with precomputed
// comparable forms. FullNameNorm is a pure function of FullName.
type NormalizedMember struct {
	FullName     string
	FullNameNorm string
	LastNameNorm string
	DistrictNorm string
	PartyID      string
	Gender       string
	DistrictID   string
}
