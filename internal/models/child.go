package models

import "time"

// Child represents a row of the children table.
type Child struct {
	ID          int64      `json:"id" db:"id"`
	ParentID    int64      `json:"parent_id" db:"parent_id"`
	Name        string     `json:"name" db:"name"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"birth_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ChildCreate carries the fields of a new child.
type ChildCreate struct {
	ParentID    int64
	Name        string
	DateOfBirth time.Time
}

// ChildPatch lists the fields of a child that may change. Nil fields are
// left untouched.
type ChildPatch struct {
	Name        *string
	DateOfBirth *time.Time
}

// Apply copies the non-nil fields of the patch onto c.
func (cp ChildPatch) Apply(c *Child) {
	if cp.Name != nil {
		c.Name = *cp.Name
	}
	if cp.DateOfBirth != nil {
		dob := *cp.DateOfBirth
		c.DateOfBirth = &dob
	}
}

// ChildFilter narrows a children listing. ParentID is mandatory; the other
// fields are optional.
type ChildFilter struct {
	ParentID    int64
	Name        *string    // case-insensitive substring
	AddedAfter  *time.Time // created_at >= AddedAfter
	AddedBefore *time.Time // created_at <= AddedBefore
}

// StripZone keeps the wall-clock reading of t and drops its time zone.
func StripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
