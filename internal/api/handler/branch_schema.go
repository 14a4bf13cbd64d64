package handler

// --- Branch request types ---

type branchRequest struct {
	BranchName string `json:"branchname"  validate:"required"`
	Location   string `json:"location"    validate:"required"`
	ProvinceID int64  `json:"province_id" validate:"required,gt=0"`
	Status     string `json:"status"      validate:"required,oneof=active inactive"`
}

type branchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}
