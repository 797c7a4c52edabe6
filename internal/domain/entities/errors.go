package entities

import "errors"

var (
	// ErrCargoExecution indicates the cargo binary is missing or the
	// metadata command exited non-zero. Its output is never parsed.
	ErrCargoExecution = errors.New("cargo metadata execution failed")

	// ErrInvalidMetadata indicates the command output was not valid JSON
	// or did not match the format-version-1 shape.
	ErrInvalidMetadata = errors.New("invalid cargo metadata output")

	// ErrPackageNotFound indicates no package in the metadata matched
	// the target name.
	ErrPackageNotFound = errors.New("package not found in cargo metadata")
)
