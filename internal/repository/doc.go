// Package repository implements the data access layer for the HireWire API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, Update, Delete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Soft Deletes
//
// Nothing is ever removed from storage. Every table carries an is_deleted
// flag, all read queries filter on it, and Delete methods flip it. The
// unique indexes defined in database.Bootstrap include is_deleted so a
// soft-deleted record never blocks re-creation.
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//   - field += 1 for atomic counter updates
//
// # Example Usage
//
//	repo := NewJobRepository(db)
//	job, err := repo.GetByID(ctx, "job:abc123")
//	if err != nil {
//	    return err
//	}
//	if job == nil {
//	    // Not found (or soft-deleted)
//	}
package repository
