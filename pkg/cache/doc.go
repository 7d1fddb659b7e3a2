// Package cache provides content-addressed caching for parsed trees and
// rendered artifacts.
//
// # Overview
//
// The expensive stages of the pipeline (parsing large inputs, Graphviz
// rendering, statistics over big trees) are keyed by hashes of their
// inputs and cached between runs. Three backends implement the [Cache]
// interface:
//
//   - [FileCache]: directory-backed, used by the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// # Keys
//
// A [Keyer] turns stage inputs into keys. [DefaultKeyer] prefixes each
// key with the stage name and hashes the identifying inputs; wrap it in
// a [ScopedKeyer] to isolate namespaces.
//
//	k := cache.NewDefaultKeyer()
//	key := k.TreeKey("newick", cache.Hash(source))
//
// # Retries
//
// Transient backend failures are wrapped with [Retryable]; callers that
// want resilience run operations through [RetryWithBackoff].
package cache
