// Package validation provides input validation functions for uncpath.
package validation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyInput          = errors.New("input is empty")
	ErrControlCharacter    = errors.New("input contains control characters")
	ErrInvalidHost         = errors.New("host contains a path separator")
	ErrInvalidShare        = errors.New("share contains a path separator")
	ErrRelativeMountPoint  = errors.New("mount point is not an absolute path")
	ErrPathTooLong         = errors.New("path exceeds maximum length")
	ErrInvalidMappingShape = errors.New("expected format: host:share:mount_point")
)

const MaxPathLength = 4096

// ValidateHost checks a host name taken from a mapping definition.
func ValidateHost(host string) error {
	if err := validateComponent(host); err != nil {
		return err
	}
	if strings.ContainsAny(host, `/\`) {
		return ErrInvalidHost
	}
	return nil
}

// ValidateShare checks a share name taken from a mapping definition.
func ValidateShare(share string) error {
	if err := validateComponent(share); err != nil {
		return err
	}
	if strings.ContainsAny(share, `/\`) {
		return ErrInvalidShare
	}
	return nil
}

// ValidateMountPoint rejects empty or unprintable mount points. Relative
// mount points are reported with ErrRelativeMountPoint; callers treat that
// as a warning since the mount point is used verbatim.
func ValidateMountPoint(path string) error {
	if err := validateComponent(path); err != nil {
		return err
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if !strings.HasPrefix(path, "/") {
		return ErrRelativeMountPoint
	}
	return nil
}

// SplitMappingArg splits a host:share:mount_point argument.
func SplitMappingArg(arg string) (host, share, mountPoint string, err error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return "", "", "", ErrInvalidMappingShape
	}
	return parts[0], parts[1], parts[2], nil
}

func validateComponent(s string) error {
	if s == "" {
		return ErrEmptyInput
	}
	for _, r := range s {
		if r < 32 || r == 127 {
			return ErrControlCharacter
		}
	}
	return nil
}

func SanitizeString(input string) string {
	var result strings.Builder
	for _, r := range input {
		if r >= 32 && r != 127 {
			result.WriteRune(r)
		}
	}
	return result.String()
}
