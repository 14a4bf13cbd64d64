package handler

// --- Donor request types ---

type createDonorRequest struct {
	DonorName    string `json:"donorName"    validate:"required"`
	BloodType    string `json:"bloodType"    validate:"omitempty,bloodgroup"`
	ProfileImage string `json:"profileImage" validate:"omitempty,url"`
	UserID       *int64 `json:"userId"`
}

type updateDonorRequest struct {
	DonorName    string `json:"donorName"    validate:"required"`
	BloodType    string `json:"bloodType"    validate:"omitempty,bloodgroup"`
	ProfileImage string `json:"profileImage" validate:"omitempty,url"`
}

// deleteResponse is the acknowledgement envelope for destructive operations.
type deleteResponse struct {
	Message string `json:"message"`
}
