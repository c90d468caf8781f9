// Package speaker classifies and normalizes raw speaker strings from
// legislative transcripts.
//
// Raw speaker labels are inconsistent: honorifics ("M.", "Mme"), OCR noise
// (page numbers glued to the name), trailing district mentions ("M. Girard,
// Lac-Saint-Jean"), action annotations ("(suite)", "- réplique"), collective
// voices ("Des voix") and institutional titles ("Le Président"). Classify
// sorts each label into one of four categories; Normalize additionally cleans
// person labels into a canonical comparable form (lowercase Latin letters and
// single spaces) and extracts the district hint when one is present.
//
// NormalizeMemberName applies the same canonical form to roster entries,
// handling the "Lastname, Firstname" convention used by some reference
// datasets. The last whitespace-delimited token of a normalized full name is
// treated as the family name throughout; this is a simplifying convention,
// not a linguistic claim.
package speaker
