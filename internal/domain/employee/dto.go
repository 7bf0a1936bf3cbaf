package employee

import (
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	DepartmentID  *string `json:"department_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	JoinDate      *string `json:"join_date,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName      *string `json:"full_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	DepartmentID  *string `json:"department_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	Status        *string `json:"status,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Status != nil {
		switch EmployeeStatus(*r.Status) {
		case StatusActive, StatusInactive:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active or inactive"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
