// Package entity contains the core business objects of the project.
package entity

import "time"

// Coupon is a percentage discount code. Codes are normalized to uppercase on
// write and on lookup, which makes matching case-insensitive.
type Coupon struct {
	ID        int64
	Code      string // Unique, stored uppercase.
	Discount  int    // Percentage in [0,100]; stored value is returned as-is by the evaluator.
	Active    bool
	CreatedAt time.Time
}
