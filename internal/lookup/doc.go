// Package lookup implements the character search and cache management
// operations behind the holocron commands.
//
// Search consults the cache first and only reaches the API on a miss; a
// cached name is never refreshed. An empty result, a non-200 response, and a
// transport failure on the people search all produce the same user-facing
// NotFoundMessage and leave the cache untouched. The homeworld fetch has no
// such fallback: any failure there, including a non-numeric period, is
// returned to the caller.
package lookup
