package domain

import "go.trai.ch/zerr"

var (
	// ErrBinaryNotFound is returned when the main executable to deploy does not exist.
	ErrBinaryNotFound = zerr.New("binary not found")

	// ErrNotExecutable is returned when the deployment target exists but is not an executable file.
	ErrNotExecutable = zerr.New("not an executable")

	// ErrNotELF is returned when a file expected to be an ELF image has a different format.
	ErrNotELF = zerr.New("not an ELF file")

	// ErrTruncatedELF is returned when an ELF image is too short to contain the headers it declares.
	ErrTruncatedELF = zerr.New("truncated ELF file")

	// ErrMissingCompanion is returned when a desktop file, icon or launcher named on
	// the request does not exist.
	ErrMissingCompanion = zerr.New("companion file not found")

	// ErrLibraryNotFound is returned when a shared library dependency cannot be resolved
	// on the host after framework detection has completed.
	ErrLibraryNotFound = zerr.New("library not found")

	// ErrToolUnavailable is returned when a required external tool is not present on PATH.
	ErrToolUnavailable = zerr.New("tool unavailable")

	// ErrToolFailed is returned when an external tool ran but exited unsuccessfully.
	ErrToolFailed = zerr.New("tool failed")

	// ErrQtNotFound is returned when no usable qmake could be located to answer
	// install-path queries.
	ErrQtNotFound = zerr.New("qt installation not found")

	// ErrAbsoluteRunPath is returned when a deployed artifact still carries an absolute
	// RPATH after the repair pass.
	ErrAbsoluteRunPath = zerr.New("absolute run path remains")

	// ErrStageFailed is returned when a mandatory deployment stage could not complete.
	ErrStageFailed = zerr.New("deployment stage failed")

	// ErrInvalidLayout is returned when an AppDir root cannot be created or is not writable.
	ErrInvalidLayout = zerr.New("invalid appdir layout")
)
