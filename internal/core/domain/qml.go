package domain

import "strings"

// QMLModule is one import reported by the framework's QML import scanner.
type QMLModule struct {
	// Name is the dotted import name, e.g. "QtQuick.Controls".
	Name string
	// Path is the absolute install path of the module, empty for imports the
	// scanner could not locate.
	Path string
	// RelativePath is the module path relative to the QML install root.
	RelativePath string
	// Type distinguishes "module" imports from file and directory imports.
	Type string
}

// IsModule reports whether the import is a proper module rather than a file
// or directory import.
func (m QMLModule) IsModule() bool { return m.Type == "module" }

// criticalQMLModules must deploy whenever QtQuick.Controls is in use; the
// style implementations resolve through them at runtime.
var criticalQMLModules = []string{
	"QtQuick/Controls.2",
	"QtQuick/Templates.2",
}

// CriticalQMLModules returns the module directories that must accompany a
// QtQuick.Controls application even when the scanner does not report them.
func CriticalQMLModules(modules []QMLModule) []string {
	for _, m := range modules {
		if strings.HasPrefix(m.Name, "QtQuick.Controls") {
			return criticalQMLModules
		}
	}
	return nil
}
