package util

import (
	"github.com/google/uuid"
)

// NewRunID returns an identifier for a single agent invocation, for correlating logs
func NewRunID() string {
	return uuid.New().String()
}
