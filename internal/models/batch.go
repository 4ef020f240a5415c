package models

import (
	"errors"
	"strings"
)

// BatchType classifies a session for default rate selection
type BatchType string

const (
	// BatchTypeMorning uses the morning rate
	BatchTypeMorning BatchType = "Morning"

	// BatchTypeEvening uses the evening rate
	BatchTypeEvening BatchType = "Evening"

	// BatchTypeCustom uses the default rate
	BatchTypeCustom BatchType = "Custom"
)

// ErrUnknownBatchType is returned for a batch type outside the closed set
var ErrUnknownBatchType = errors.New("unknown batch type")

// BatchTypes lists every batch type in display order
func BatchTypes() []BatchType {
	return []BatchType{BatchTypeMorning, BatchTypeEvening, BatchTypeCustom}
}

// ParseBatchType accepts any casing and returns the canonical batch type
func ParseBatchType(s string) (BatchType, error) {
	for _, bt := range BatchTypes() {
		if strings.EqualFold(strings.TrimSpace(s), string(bt)) {
			return bt, nil
		}
	}
	return "", ErrUnknownBatchType
}

// IsValid reports whether the batch type is one of the known values
func (b BatchType) IsValid() bool {
	switch b {
	case BatchTypeMorning, BatchTypeEvening, BatchTypeCustom:
		return true
	}
	return false
}

// String returns the display name
func (b BatchType) String() string {
	return string(b)
}
