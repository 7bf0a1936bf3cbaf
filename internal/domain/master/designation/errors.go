package designation

import "errors"

var (
	ErrDesignationNotFound = errors.New("designation not found")
	ErrDesignationExists   = errors.New("designation name already exists")
)
