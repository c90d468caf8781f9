// Package legislature maps calendar dates to legislature identifiers via
// interval containment over a small ordered list of date ranges.
//
// A default dataset for the Quebec National Assembly is embedded; a different
// dataset can be loaded from a JSON file with the same shape. Bounds are
// inclusive and the first containing interval wins when ranges overlap.
package legislature
