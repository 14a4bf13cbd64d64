package domain

import "time"

// BranchStatus is the operational state of a branch.
type BranchStatus string

const (
	BranchActive   BranchStatus = "active"
	BranchInactive BranchStatus = "inactive"
)

// Branch is a blood-bank branch. ProvinceName is populated by the list
// query's join and is empty elsewhere.
type Branch struct {
	ID           int64        `json:"branchid"`
	BranchName   string       `json:"branchname"`
	Location     string       `json:"location"`
	ProvinceID   int64        `json:"province_id"`
	ProvinceName string       `json:"province_name,omitempty"`
	CreatedByID  int64        `json:"createdbyid"`
	CreatedDate  time.Time    `json:"createddate"`
	Status       BranchStatus `json:"status"`
}
