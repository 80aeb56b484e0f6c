package repository

import "errors"

var (
	ErrFailedToSave    = errors.New("failed to save record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToDelete  = errors.New("failed to delete record")
	ErrFailedToMigrate = errors.New("failed to migrate schema")
)
