package shortlist

import (
	"errors"
	"time"
)

var ErrAlreadyShortlisted = errors.New("cleaner already shortlisted")

var ErrNotShortlisted = errors.New("cleaner not on shortlist")

var ErrCleanerNotFound = errors.New("cleaner not found")

// Entry is one favourited cleaner on a home owner's shortlist.
type Entry struct {
	ID          int64     `json:"id"`
	HomeOwnerID string    `json:"homeOwnerId"`
	CleanerID   string    `json:"cleanerId"`
	CleanerName string    `json:"cleanerName"`
	CreatedAt   time.Time `json:"createdAt"`
}
