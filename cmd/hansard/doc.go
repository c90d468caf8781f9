// Command hansard matches transcript speaker labels against legislature
// member rosters and scores the results.
package main
