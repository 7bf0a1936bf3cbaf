package designation

import "context"

type DesignationRepository interface {
	Create(ctx context.Context, des Designation) (Designation, error)
	GetByID(ctx context.Context, id string) (Designation, error)
	List(ctx context.Context) ([]Designation, error)
	Update(ctx context.Context, id string, req UpsertDesignationRequest) error
	Delete(ctx context.Context, id string) error
}
