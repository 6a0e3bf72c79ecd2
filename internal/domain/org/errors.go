package org

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrSectorNotFound   = errors.New("sector not found")
	ErrPositionNotFound = errors.New("position not found")
)
