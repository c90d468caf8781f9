// Package textmetric provides string similarity ratios on a 0-100 scale for
// fuzzy name matching.
//
// Three ratios are exposed:
//   - Ratio: Levenshtein-normalized similarity over the full strings
//   - TokenSortRatio: Ratio over whitespace tokens sorted alphabetically,
//     making the score insensitive to word order ("girard eric" vs "eric girard")
//   - PartialRatio: best Ratio of the shorter string against every
//     equal-length window of the longer string, rewarding substring matches
//
// All ratios are symmetric and return 100 for identical inputs. Callers are
// expected to pass already-normalized strings (lowercase, accent-free).
package textmetric
