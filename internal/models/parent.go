package models

import "time"

// Parent represents a row of the parents table.
type Parent struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	FirstName      *string   `json:"first_name" db:"first_name"`
	LastName       *string   `json:"last_name" db:"last_name"`
	Age            *int      `json:"age" db:"age"`
	Address        *string   `json:"address" db:"address"`
	City           *string   `json:"city" db:"city"`
	Country        *string   `json:"country" db:"country"`
	Pincode        *string   `json:"pincode" db:"pincode"`
	ProfilePhoto   *string   `json:"profile_photo" db:"profile_photo"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// ParentWithChildren is a parent with its children loaded.
type ParentWithChildren struct {
	Parent
	Children []Child `json:"children"`
}

// ParentPatch lists the profile fields a parent may change. Nil fields are
// left untouched.
type ParentPatch struct {
	ID        int64
	FirstName *string
	LastName  *string
	Age       *int
	Address   *string
	City      *string
	Country   *string
	Pincode   *string
}

// Apply copies the non-nil fields of the patch onto p.
func (pp ParentPatch) Apply(p *Parent) {
	if pp.FirstName != nil {
		p.FirstName = pp.FirstName
	}
	if pp.LastName != nil {
		p.LastName = pp.LastName
	}
	if pp.Age != nil {
		p.Age = pp.Age
	}
	if pp.Address != nil {
		p.Address = pp.Address
	}
	if pp.City != nil {
		p.City = pp.City
	}
	if pp.Country != nil {
		p.Country = pp.Country
	}
	if pp.Pincode != nil {
		p.Pincode = pp.Pincode
	}
}
