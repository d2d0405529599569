// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/planning-trap/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateStorageBackend checks if the preference storage backend is supported.
func ValidateStorageBackend(backend string) error {
	switch backend {
	case constants.StorageBackendMemory, constants.StorageBackendSQLite, constants.StorageBackendRedis:
		return nil
	}
	return fmt.Errorf("expected storage backend of %s, %s or %s, got %s",
		constants.StorageBackendMemory, constants.StorageBackendSQLite, constants.StorageBackendRedis, backend)
}

// ValidateDuration checks a duration selector offered to the user: a preset
// week count or the custom sentinel. The engine itself accepts anything.
func ValidateDuration(duration string) error {
	if duration == constants.CustomDuration {
		return nil
	}
	for _, preset := range constants.DurationPresets {
		if duration == fmt.Sprintf("%d", preset) {
			return nil
		}
	}
	return fmt.Errorf("expected duration of %v or %s, got %s",
		constants.DurationPresets, constants.CustomDuration, duration)
}
