// Package cache provides the response cache shared by the weather routes.
//
// It provides canonical key derivation from a request path and its
// parameters, and a generic in-memory TTL cache with lazy expiration.
package cache
