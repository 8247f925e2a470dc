package models

import "time"

// ActivityLogLimit bounds the activity log; once exceeded, the oldest
// entries are dropped.
const ActivityLogLimit = 1000

// ActivityEntry is one row of the shared audit trail, newest first.
type ActivityEntry struct {
	// Timestamp is when the action happened.
	Timestamp time.Time `json:"timestamp"`

	// Action names what happened, e.g. "data_sync".
	Action string `json:"action"`

	// ClientIP is the best-effort external IP of the acting client.
	ClientIP string `json:"userIP,omitempty"`

	// DataTypes lists the dataset names touched by the action.
	DataTypes []string `json:"dataTypes,omitempty"`

	// DocumentCount is the size of the document dataset after the action.
	DocumentCount int `json:"documentCount,omitempty"`

	// Details carries free-form context for non-sync actions.
	Details string `json:"details,omitempty"`
}

// ActivityLog is an append-only, size-bounded sequence of entries ordered
// newest first. It is not merged conflict-aware across clients: each
// client's log is the server's log plus its own newly prepended entries.
type ActivityLog []ActivityEntry

// Prepend inserts entry at the head and evicts the oldest entries beyond
// ActivityLogLimit. It returns the new log; the receiver is not mutated.
func (l ActivityLog) Prepend(entry ActivityEntry) ActivityLog {
	out := make(ActivityLog, 0, len(l)+1)
	out = append(out, entry)
	out = append(out, l...)
	if len(out) > ActivityLogLimit {
		out = out[:ActivityLogLimit]
	}
	return out
}
