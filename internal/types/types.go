// Package types contains shared types and error definitions for uncpath.
package types

import (
	"errors"
	"fmt"
)

// Source identifies where a mapping came from
type Source int

const (
	SourceUnknown Source = iota
	SourceDefault
	SourceEnv
	SourceFile
	SourceCLI
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceEnv:
		return "env"
	case SourceFile:
		return "file"
	case SourceCLI:
		return "cli"
	default:
		return "unknown"
	}
}

// Mapping associates a host and share with a local mount point
type Mapping struct {
	Host       string `json:"host" yaml:"host"`
	Share      string `json:"share" yaml:"share"`
	MountPoint string `json:"mount_point" yaml:"mount_point"`
	Source     Source `json:"-" yaml:"-"`
}

// Sentinel errors for mapping and conversion
var (
	ErrConfig             = errors.New("invalid mapping configuration")
	ErrUnrecognizedFormat = errors.New("path does not match any supported UNC format")
	ErrUnknownMapping     = errors.New("no mapping found for host/share")
)

// PathError represents a configuration or conversion error with context
type PathError struct {
	Op    string
	Input string
	Err   error
	Help  string
}

func (e *PathError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Input)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IsConfig checks if the error comes from mapping configuration
func IsConfig(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsUnrecognizedFormat checks if the error indicates an unsupported path syntax
func IsUnrecognizedFormat(err error) bool {
	return errors.Is(err, ErrUnrecognizedFormat)
}

// IsUnknownMapping checks if the error indicates a host/share with no mapping
func IsUnknownMapping(err error) bool {
	return errors.Is(err, ErrUnknownMapping)
}

// NewPathError creates a new PathError
func NewPathError(op, input string, err error, help string) *PathError {
	return &PathError{Op: op, Input: input, Err: err, Help: help}
}

// NewConfigError wraps a configuration failure for the named source
func NewConfigError(source, input string, cause error, help string) *PathError {
	return &PathError{
		Op:    source,
		Input: input,
		Err:   fmt.Errorf("%w: %w", ErrConfig, cause),
		Help:  help,
	}
}
