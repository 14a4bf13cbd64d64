package domain

// Province is a reference row; the set is seeded by migration and read-only
// through the API.
type Province struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BloodType is one of the ABO/Rh groups.
type BloodType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
