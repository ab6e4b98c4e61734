package domain

import "time"

type Status string

const StatusOpen Status = "OPEN"

// Complaint is an anonymous feedback record. Rows are append-only; status
// transitions happen through external moderation tooling.
type Complaint struct {
	GCID         int64
	ComplainerID int64
	Text         string
	IsAbusive    bool
	Status       Status
	CreatedAt    time.Time
}
