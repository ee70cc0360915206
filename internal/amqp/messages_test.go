package amqp

import (
	"testing"
)

func TestLedgerChangedMessageRoundTrip(t *testing.T) {
	msg := NewLedgerChangedMessage(42, OpAddTransaction, "Ops")
	if msg.ID == "" {
		t.Error("message should carry a generated event ID")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	got, err := LedgerChangedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if got.ID != msg.ID || got.Revision != 42 || got.Operation != OpAddTransaction || got.Project != "Ops" {
		t.Errorf("round trip = %+v, want original message", got)
	}
}

func TestLedgerChangedMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := LedgerChangedMessageFromJSON([]byte("not json")); err == nil {
		t.Error("garbage input should fail to unmarshal")
	}
}

func TestLedgerChangedMessageOmitsEmptyProject(t *testing.T) {
	msg := NewLedgerChangedMessage(1, OpImport, "")
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "" {
		t.Fatal("empty payload")
	}
	got, err := LedgerChangedMessageFromJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Project != "" {
		t.Errorf("project = %q, want empty for whole-ledger operations", got.Project)
	}
}
