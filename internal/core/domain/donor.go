package domain

import "time"

// Donor is a donor record. UserID links the donor to its identity record;
// the seed row created at registration carries the user's name and contacts
// until the donor profile is filled in.
type Donor struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	MobileNumber string    `json:"mobile_number,omitempty"`
	BloodType    string    `json:"blood_type,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	UserID       *int64    `json:"user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
