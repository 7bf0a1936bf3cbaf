package designation

import (
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/pkg/validator"
)

type Designation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpsertDesignationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r UpsertDesignationRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}
