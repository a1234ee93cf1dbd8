package repository

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrOrderNotFound  = errors.New("order not found")
)
