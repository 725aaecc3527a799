package domain

import (
	"path/filepath"
	"strings"
)

// QtVersion is the major framework version detected in a dependency closure.
type QtVersion int

const (
	// QtUnknown means no framework library has been seen yet.
	QtUnknown QtVersion = 0
	// Qt4 is the legacy major version.
	Qt4 QtVersion = 4
	// Qt5 is the long-term-support major version.
	Qt5 QtVersion = 5
	// Qt6 is the current major version.
	Qt6 QtVersion = 6
)

// String returns the string representation of the QtVersion.
func (v QtVersion) String() string {
	switch v {
	case Qt4:
		return "Qt4"
	case Qt5:
		return "Qt5"
	case Qt6:
		return "Qt6"
	default:
		return "unknown"
	}
}

// Detected reports whether a framework version has been established.
func (v QtVersion) Detected() bool { return v != QtUnknown }

// DetectQtVersion inspects a library path and returns the framework major
// version it belongs to, or QtUnknown for non-framework libraries.
func DetectQtVersion(libraryPath string) QtVersion {
	name := strings.ToLower(filepath.Base(libraryPath))
	switch {
	case strings.Contains(name, "libqt6"):
		return Qt6
	case strings.Contains(name, "libqt5"):
		return Qt5
	case strings.Contains(name, "libqt4"):
		return Qt4
	default:
		return QtUnknown
	}
}
