package model

import "time"

type Kid struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// LedgerKind classifies a ledger entry.
type LedgerKind string

const (
	KindEarn   LedgerKind = "earn"
	KindSpend  LedgerKind = "spend"
	KindAdjust LedgerKind = "adjust"
)

// Valid reports whether k is one of the known ledger kinds.
func (k LedgerKind) Valid() bool {
	switch k {
	case KindEarn, KindSpend, KindAdjust:
		return true
	}
	return false
}

// LedgerEntry is an immutable record of a point delta. Entries are only
// ever appended; a kid's Points equals the sum of their deltas.
type LedgerEntry struct {
	ID        int64      `json:"id"`
	KidID     string     `json:"kid_id"`
	Delta     int        `json:"delta"`
	Reason    string     `json:"reason"`
	Kind      LedgerKind `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`
}
