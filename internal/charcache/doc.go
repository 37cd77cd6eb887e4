// Package charcache persists character lookups keyed by the exact name that
// was searched.
//
// The cache is a single mapping from name to (character record, capture
// timestamp). Callers load the whole mapping, mutate it, and save it back;
// there is no incremental update, no eviction, and no expiry. Keys are never
// normalized, so "Luke" and "luke" are distinct entries.
//
// # Storage
//
// Two backends share the same contract:
//
//	json    one indented JSON document, replaced via temp file + rename
//	sqlite  one SQLite database file, rewritten in a single transaction
//
// Every Load, Save, and Clear holds an advisory lock on "<path>.lock". The
// lock covers one file operation; a load/mutate/save sequence in two
// processes can still lose one side's update.
package charcache
