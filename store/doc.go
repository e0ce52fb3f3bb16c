// Package store keeps a workspace of named vectors in SQLite. Vectors are
// persisted as BLOBs in the vector package encoding, and ranking queries run
// in SQL through the vector functions registered by the engine package.
package store
