package master

import (
	"context"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/master/department"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/master/designation"
)

// MasterService groups the small lookup tables behind one surface.
type MasterService interface {
	CreateDepartment(ctx context.Context, req department.UpsertDepartmentRequest) (department.Department, error)
	GetDepartment(ctx context.Context, id string) (department.Department, error)
	ListDepartments(ctx context.Context) ([]department.Department, error)
	UpdateDepartment(ctx context.Context, id string, req department.UpsertDepartmentRequest) (department.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateDesignation(ctx context.Context, req designation.UpsertDesignationRequest) (designation.Designation, error)
	GetDesignation(ctx context.Context, id string) (designation.Designation, error)
	ListDesignations(ctx context.Context) ([]designation.Designation, error)
	UpdateDesignation(ctx context.Context, id string, req designation.UpsertDesignationRequest) (designation.Designation, error)
	DeleteDesignation(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departments  department.DepartmentRepository
	designations designation.DesignationRepository
}

func NewMasterService(departments department.DepartmentRepository, designations designation.DesignationRepository) MasterService {
	return &masterServiceImpl{departments: departments, designations: designations}
}

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.UpsertDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}
	return s.departments.Create(ctx, department.Department{Name: req.Name, Description: req.Description})
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.departments.List(ctx)
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, id string, req department.UpsertDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}
	if err := s.departments.Update(ctx, id, req); err != nil {
		return department.Department{}, err
	}
	return s.departments.GetByID(ctx, id)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departments.Delete(ctx, id)
}

func (s *masterServiceImpl) CreateDesignation(ctx context.Context, req designation.UpsertDesignationRequest) (designation.Designation, error) {
	if err := req.Validate(); err != nil {
		return designation.Designation{}, err
	}
	return s.designations.Create(ctx, designation.Designation{Name: req.Name, Description: req.Description})
}

func (s *masterServiceImpl) GetDesignation(ctx context.Context, id string) (designation.Designation, error) {
	return s.designations.GetByID(ctx, id)
}

func (s *masterServiceImpl) ListDesignations(ctx context.Context) ([]designation.Designation, error) {
	return s.designations.List(ctx)
}

func (s *masterServiceImpl) UpdateDesignation(ctx context.Context, id string, req designation.UpsertDesignationRequest) (designation.Designation, error) {
	if err := req.Validate(); err != nil {
		return designation.Designation{}, err
	}
	if err := s.designations.Update(ctx, id, req); err != nil {
		return designation.Designation{}, err
	}
	return s.designations.GetByID(ctx, id)
}

func (s *masterServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	return s.designations.Delete(ctx, id)
}
