// Package entity contains the core business objects of the project.
package entity

import "time"

// Rating is a review left on a listing. It is cascade-deleted with the
// listing; AccountID is a weak reference like everywhere else in the
// commerce store.
type Rating struct {
	ID        int64
	ListingID int64
	AccountID int64
	Score     int
	Review    string
	CreatedAt time.Time
}
