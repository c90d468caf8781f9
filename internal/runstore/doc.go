// Package runstore persists match runs to SQLite so they can be listed,
// re-inspected and evaluated later without re-running the matcher.
package runstore
