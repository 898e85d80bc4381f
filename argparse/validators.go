package argparse

import (
	"fmt"
	"os"
	"regexp"
)

// Validation helper functions for Argument.ValidateFunc

// ValidateNonEmpty rejects empty values
func ValidateNonEmpty() func(string) error {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("value cannot be empty")
		}
		return nil
	}
}

// ValidateFile creates a validation function for file paths
func ValidateFile(mustExist bool) func(string) error {
	return func(path string) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		if mustExist {
			info, err := os.Stat(path)
			if os.IsNotExist(err) {
				return fmt.Errorf("file does not exist: %s", path)
			} else if err != nil {
				return fmt.Errorf("cannot access file %s: %w", path, err)
			}
			if info.IsDir() {
				return fmt.Errorf("path is a directory: %s", path)
			}
		}
		return nil
	}
}

// ValidateDir creates a validation function for directory paths
func ValidateDir(mustExist bool) func(string) error {
	return func(path string) error {
		if path == "" {
			return fmt.Errorf("directory path cannot be empty")
		}
		if mustExist {
			info, err := os.Stat(path)
			if os.IsNotExist(err) {
				return fmt.Errorf("directory does not exist: %s", path)
			} else if err != nil {
				return fmt.Errorf("cannot access directory %s: %w", path, err)
			} else if !info.IsDir() {
				return fmt.Errorf("path is not a directory: %s", path)
			}
		}
		return nil
	}
}

// ValidateRegex creates a validation function that matches the whole raw
// value against pattern. An invalid pattern fails every value.
func ValidateRegex(pattern string) func(string) error {
	// Compile once during function creation
	regex, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return func(string) error {
			return fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
	}

	return func(value string) error {
		if !regex.MatchString(value) {
			return fmt.Errorf("value '%s' does not match pattern '%s'", value, pattern)
		}
		return nil
	}
}
