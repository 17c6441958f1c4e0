package apperrors

import "errors"

var (
	ErrDictionaryNotFound = errors.New("dictionary file not found")
	ErrInvalidDictionary  = errors.New("invalid dictionary file")
	ErrQueryTooLarge      = errors.New("query exceeds maximum size")
)
