package database

import "context"

// Schema statements applied at startup. SurrealDB tables are schemaless, so
// this only pins down the constraints the application depends on: the unique
// indexes that make the uniqueness invariants atomic at the storage layer.
//
// Each unique index includes is_deleted so a soft-deleted record does not
// block re-creation: uniqueness applies among live records only.
var schemaStatements = []string{
	`DEFINE TABLE IF NOT EXISTS user;`,
	`DEFINE INDEX IF NOT EXISTS user_email_live ON TABLE user FIELDS email, is_deleted UNIQUE;`,

	`DEFINE TABLE IF NOT EXISTS company;`,
	`DEFINE INDEX IF NOT EXISTS company_owner_live ON TABLE company FIELDS owner, is_deleted UNIQUE;`,

	`DEFINE TABLE IF NOT EXISTS job;`,
	`DEFINE INDEX IF NOT EXISTS job_company ON TABLE job FIELDS company;`,
	`DEFINE INDEX IF NOT EXISTS job_status ON TABLE job FIELDS status;`,

	`DEFINE TABLE IF NOT EXISTS application;`,
	`DEFINE INDEX IF NOT EXISTS application_job_candidate_live ON TABLE application FIELDS job, candidate, is_deleted UNIQUE;`,
	`DEFINE INDEX IF NOT EXISTS application_candidate ON TABLE application FIELDS candidate;`,
	`DEFINE INDEX IF NOT EXISTS application_job ON TABLE application FIELDS job;`,
}

// Bootstrap applies the schema definitions. It is idempotent and safe to run
// on every startup.
func Bootstrap(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}
