package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheCreateFailed is returned when the resolution cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create resolution cache directory")

	// ErrCacheReadFailed is returned when reading a cached resolution fails.
	ErrCacheReadFailed = zerr.New("failed to read cached resolution")

	// ErrCacheWriteFailed is returned when writing a cached resolution fails.
	ErrCacheWriteFailed = zerr.New("failed to write cached resolution")

	// ErrCacheMarshalFailed is returned when marshaling a cached resolution fails.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cached resolution")

	// ErrCacheUnmarshalFailed is returned when a cached resolution is not valid JSON.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cached resolution")

	// ErrCacheClearFailed is returned when clearing cached resolutions fails.
	ErrCacheClearFailed = zerr.New("failed to clear cached resolutions")

	// ErrLookupRequestFailed is returned when a lookup service request fails after all attempts.
	ErrLookupRequestFailed = zerr.New("lookup service request failed")

	// ErrNoTargetConfigured is returned when neither configuration nor flags name a target distribution.
	ErrNoTargetConfigured = zerr.New("no target distribution configured")

	// ErrUnknownTarget is returned when a target distribution is not in the distribution table.
	ErrUnknownTarget = zerr.New("unknown target distribution")

	// ErrUnknownSource is returned when the source distribution is missing or not in the distribution table.
	ErrUnknownSource = zerr.New("unknown source distribution")

	// ErrUnknownFamily is returned when no inventory command exists for a package manager family.
	ErrUnknownFamily = zerr.New("unsupported package manager family")

	// ErrInventoryReadFailed is returned when an inventory file cannot be read.
	ErrInventoryReadFailed = zerr.New("failed to read inventory file")

	// ErrInventoryCommandFailed is returned when the host package manager query fails.
	ErrInventoryCommandFailed = zerr.New("failed to list installed packages")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file contains an invalid value.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrConfigVersionUnsupported is returned when the config file declares an unsupported version.
	ErrConfigVersionUnsupported = zerr.New("unsupported config version, expected 1")

	// ErrReportWriteFailed is returned when the mapping report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write mapping report")

	// ErrInvalidOutputMode is returned when an output mode flag is not auto, linear or quiet.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'linear' or 'quiet'")

	// ErrResolutionFailed is returned when resolving a package aborts the batch.
	ErrResolutionFailed = zerr.New("package resolution failed")
)
