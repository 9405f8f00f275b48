package storage

import "errors"

var (
	// ErrNotFound is returned by Backend.Get when the key is absent.
	ErrNotFound = errors.New("storage: key not found")
	// ErrInvalidKey is returned for keys a backend cannot address.
	ErrInvalidKey = errors.New("storage: invalid key")
	// ErrUnknownDriver is returned by Open for unsupported driver names.
	ErrUnknownDriver = errors.New("storage: unknown driver")
	// ErrRedisNotReady is returned when Redis cannot be reached within the
	// configured attempts.
	ErrRedisNotReady = errors.New("storage: redis not ready")
	// ErrInvalidRedisURL is returned when the Redis connection URL does not
	// parse.
	ErrInvalidRedisURL = errors.New("storage: invalid redis url")
)
