// Package testdb provides test database utilities for e2e testing.
//
// This package creates isolated SurrealDB test environments that run real
// queries against a real database instance, ensuring tests validate actual
// database behavior including unique index enforcement and atomic counters.
//
// Each TestDB gets a unique namespace, so parallel tests never see each
// other's data. When no database is reachable the test is skipped rather
// than failed; set TEST_DB_HOST/TEST_DB_PORT/TEST_DB_USER/TEST_DB_PASSWORD
// to point at a non-default instance.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    result, err := tdb.DB.Query(tdb.Ctx(), "SELECT * FROM user", nil)
//	}
package testdb
