package report

import "errors"

var (
	ErrNotFound      = errors.New("report not found")
	ErrInvalidReport = errors.New("invalid report")
)
