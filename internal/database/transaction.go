package database

// AtomicBatch accumulates statements and executes them as a single
// BEGIN TRANSACTION / COMMIT TRANSACTION block: all statements succeed or
// fail together. There is no isolation between Add() calls; the batch is
// sent to the server only when Execute() is called.

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// AtomicBatch builds a set of statements executed atomically.
type AtomicBatch struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewAtomicBatch creates an empty batch.
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		vars: make(map[string]interface{}),
	}
}

// Add appends a statement to the batch. Variables are namespaced
// ($email -> $v1_email) so statements from different sources cannot collide.
func (b *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	// Longer names are rewritten first so $status cannot clobber $status_note.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		b.varCounter++
		namespaced := fmt.Sprintf("v%d_%s", b.varCounter, name)
		query = strings.ReplaceAll(query, "$"+name, "$"+namespaced)
		b.vars[namespaced] = vars[name]
	}
	b.statements = append(b.statements, strings.TrimSpace(query))
	return b
}

// Len returns the number of statements added so far.
func (b *AtomicBatch) Len() int {
	return len(b.statements)
}

// Execute runs all accumulated statements in one transaction.
func (b *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(b.statements) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range b.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(stmt, ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return db.Execute(ctx, sb.String(), b.vars)
}
