// Package internal documents the gatherly server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, and routing
// - graph: GraphQL schema, resolvers, and subscription wiring
// - domain: business logic and domain models per entity
// - storage: the JSON document store and repositories
// - bus, config, metrics: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
