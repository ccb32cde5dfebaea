package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrLocationNameTaken = errors.New("location name already in use")
	ErrLocationReference = errors.New("referenced location does not exist")
	ErrImageRequired     = errors.New("image is required")
	ErrInvalidImage      = errors.New("invalid image")
)
