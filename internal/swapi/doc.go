// Package swapi provides the minimal Star Wars API client used by character
// lookups.
//
// It exposes the people search endpoint filtered by name and a planet fetch
// that dereferences the homeworld URL embedded in a character record.
// Responses are decoded into typed records; required properties that are
// absent yield ErrMissingField instead of surfacing as empty strings later.
// Options allow tests to supply custom HTTP clients without modifying
// production code.
package swapi
