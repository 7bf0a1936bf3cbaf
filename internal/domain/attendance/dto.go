package attendance

import (
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r CheckInRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "is required"}}
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r CheckOutRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "is required"}}
	}
	return nil
}

// DailyPassResult reports how many rows each reconciliation sub-pass touched.
// Re-running a fully applied pass yields zeros.
type DailyPassResult struct {
	AutoCheckoutCount int `json:"auto_checkout_count"`
	AutoAbsentCount   int `json:"auto_absent_count"`
}
