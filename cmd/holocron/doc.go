// Package main hosts the holocron CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, builds the cache store and
// API client, and hands each invocation to the lookup service. Keep this
// package thin: behaviour belongs in internal/lookup and the packages it
// composes, while commands here translate flags and render output.
package main
