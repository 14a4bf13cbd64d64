package domain

import (
	"fmt"
	"time"
)

// Role enumerates the known account roles. The wire format stays the numeric
// code the clients already send as roleId.
type Role int

const (
	RoleDonor Role = 1
	RoleStaff Role = 2
	RoleAdmin Role = 3
)

// Valid reports whether r is one of the known role codes.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	switch r {
	case RoleDonor:
		return "donor"
	case RoleStaff:
		return "staff"
	case RoleAdmin:
		return "admin"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// User models a stored identity record. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	RoleID       Role      `json:"roleId"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is a user joined with its donor row and role name, as returned
// by GET /api/profile/:id.
type Profile struct {
	User
	RoleName     string `json:"employee_type,omitempty"`
	DonorID      *int64 `json:"donor_id,omitempty"`
	BloodType    string `json:"blood_type,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}
