// Package model describes the docdepot data model: validated document and
// revision identifiers, and the deterministic shard path scheme that maps a
// document id to its on-disk location without any persisted index.
package model
