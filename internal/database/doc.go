// Package database exposes the storage layer used by the HireWire API.
//
// See database.go for the Database interface and standard errors,
// surrealdb.go for the SurrealDB implementation, schema.go for the startup
// schema bootstrap (unique indexes backing the uniqueness invariants), and
// transaction.go for the AtomicBatch helper.
package database
