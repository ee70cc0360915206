package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Operations carried by change messages.
const (
	OpImport            = "import"
	OpAddProject        = "add_project"
	OpAddTransaction    = "add_transaction"
	OpDeleteTransaction = "delete_transaction"
)

// LedgerChangedMessage announces one successful ledger mutation. It carries
// only the revision and what changed; consumers fetch the ledger itself
// from the persistence backend.
type LedgerChangedMessage struct {
	ID        string    `json:"id"`
	Revision  uint64    `json:"revision"`
	Operation string    `json:"operation"`
	Project   string    `json:"project,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerChangedMessage creates a change message with a fresh event ID.
func NewLedgerChangedMessage(revision uint64, operation, project string) *LedgerChangedMessage {
	return &LedgerChangedMessage{
		ID:        uuid.NewString(),
		Revision:  revision,
		Operation: operation,
		Project:   project,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *LedgerChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerChangedMessageFromJSON creates a message from JSON bytes.
func LedgerChangedMessageFromJSON(data []byte) (*LedgerChangedMessage, error) {
	var msg LedgerChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
