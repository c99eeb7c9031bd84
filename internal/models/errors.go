package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrSnapshotNotUnique = errors.New("a fund snapshot for this account and month range already exists")
	ErrMonthRangeInvalid = errors.New("the start month must not be after the end month")
)
