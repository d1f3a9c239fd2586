package database

import (
	"context"
	"strings"
	"testing"
)

func TestAtomicBatch_NamespacesVariables(t *testing.T) {
	b := NewAtomicBatch()
	b.Add("CREATE user CONTENT { email: $email }", map[string]interface{}{
		"email": "a@example.com",
	})
	b.Add("UPDATE user SET email = $email", map[string]interface{}{
		"email": "b@example.com",
	})

	if b.Len() != 2 {
		t.Fatalf("expected 2 statements, got %d", b.Len())
	}
	if !strings.Contains(b.statements[0], "$v1_email") {
		t.Errorf("first statement not namespaced: %s", b.statements[0])
	}
	if !strings.Contains(b.statements[1], "$v2_email") {
		t.Errorf("second statement not namespaced: %s", b.statements[1])
	}
	if b.vars["v1_email"] != "a@example.com" || b.vars["v2_email"] != "b@example.com" {
		t.Errorf("vars not bound to their statements: %v", b.vars)
	}
}

func TestAtomicBatch_PrefixedVariableNames(t *testing.T) {
	// $status is a prefix of $status_note; rewriting must not turn
	// $status_note into a mangled reference regardless of map order.
	for i := 0; i < 50; i++ {
		b := NewAtomicBatch()
		b.Add("UPDATE application SET status = $status, status_note = $status_note, note = $note", map[string]interface{}{
			"status":      "reviewed",
			"status_note": "looks good",
			"note":        "internal",
		})

		// Names are rewritten longest first, so the counter assignment
		// is stable across runs.
		want := "UPDATE application SET status = $v2_status, status_note = $v1_status_note, note = $v3_note"
		if b.statements[0] != want {
			t.Fatalf("statement rewritten incorrectly:\n got: %s\nwant: %s", b.statements[0], want)
		}
		if b.vars["v1_status_note"] != "looks good" || b.vars["v2_status"] != "reviewed" || b.vars["v3_note"] != "internal" {
			t.Fatalf("vars bound incorrectly: %v", b.vars)
		}
	}
}

func TestAtomicBatch_EmptyExecuteIsNoOp(t *testing.T) {
	b := NewAtomicBatch()
	if err := b.Execute(context.Background(), nil); err != nil {
		t.Errorf("empty batch should be a no-op, got: %v", err)
	}
}
