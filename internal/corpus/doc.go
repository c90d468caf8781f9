// Package corpus reads transcript rows from CSV and writes matched rows back
// out with the match columns appended. Columns beyond speaker and event_date
// pass through untouched, in their original order.
package corpus
