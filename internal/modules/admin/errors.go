package admin

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrSelfChange    = errors.New("admins cannot change their own status or role")
	ErrAdminDelete   = errors.New("admin accounts cannot be deleted")
	ErrUnknownRole   = errors.New("unknown role")
	ErrUnknownStatus = errors.New("unknown status")
)
