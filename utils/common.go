package utils

import "errors"

// RCONDTOL is machine epsilon, the smallest usable reciprocal condition number
const RCONDTOL = 2.220446049250313e-16

var (
	ErrSingular = errors.New("matrix is singular")
)
