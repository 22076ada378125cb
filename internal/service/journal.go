package service

import (
	"sync"
	"time"
)

// JournalEventType tags a reconciliation journal entry
type JournalEventType string

const (
	// JournalPartialCompletion: an order was committed but its delivery was
	// not; the backend holds an order nothing will fulfil until someone acts.
	JournalPartialCompletion JournalEventType = "partial_completion"
	// JournalFallbackOrderID: the order response carried no identifier and a
	// client-side one was synthesized; it cannot be correlated with the
	// backend record.
	JournalFallbackOrderID JournalEventType = "fallback_order_id"
	// JournalDeliveryRecovered: a previously partial order had its delivery
	// scheduled on a later resubmission.
	JournalDeliveryRecovered JournalEventType = "delivery_recovered"
)

// JournalEntry is one reconciliation-relevant event
type JournalEntry struct {
	Type      JournalEventType `json:"type"`
	OrderID   string           `json:"orderId"`
	Detail    string           `json:"detail,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ReconciliationJournal records the consistency gaps the checkout workflow
// cannot close on its own: partial completions and synthesized order ids.
// It is process-wide and survives the sessions that produced its entries, so
// an operator (or a later compensation worker) can pick them up.
type ReconciliationJournal struct {
	mu      sync.Mutex
	entries []JournalEntry
}

// NewReconciliationJournal creates an empty journal
func NewReconciliationJournal() *ReconciliationJournal {
	return &ReconciliationJournal{}
}

// Record appends an entry
func (j *ReconciliationJournal) Record(eventType JournalEventType, orderID, detail string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, JournalEntry{
		Type:      eventType,
		OrderID:   orderID,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
}

// Entries returns a copy of the journal in recording order
func (j *ReconciliationJournal) Entries() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]JournalEntry, len(j.entries))
	copy(out, j.entries)
	return out
}
