package domain

// Library is a shared library resolved on the host.
type Library struct {
	// Name is the soname as it appears in the dynamic section.
	Name string
	// Path is the absolute host path the dynamic linker resolved it to.
	Path string
}

// ResolveSummary counts the outcome of a dependency resolution pass.
type ResolveSummary struct {
	Bundled  int
	Excluded int
	Version  QtVersion
}

// QtInstall holds the install paths reported by qmake -query.
type QtInstall struct {
	Prefix       string
	Bins         string
	Libs         string
	LibExecs     string
	Plugins      string
	QML          string
	Translations string
	Data         string
	Version      QtVersion
}

// DeployRequest carries everything a deployment run needs.
type DeployRequest struct {
	// BinaryPath is the executable to deploy.
	BinaryPath string
	// AppDir is the output AppDir root.
	AppDir string
	// QMLDirs are extra source trees scanned for QML imports.
	QMLDirs []string
	// QtPath optionally pins the framework install to use.
	QtPath string
	// DesktopFile and IconFile feed desktop integration.
	DesktopFile string
	IconFile    string
	// AppRunFile optionally replaces the generated AppRun script.
	AppRunFile string
	// Mode selects the bundling policy.
	Mode BundleMode
	// Strip removes symbol tables from deployed binaries.
	Strip bool
	// AlwaysOverwrite replaces files that already exist in the AppDir.
	AlwaysOverwrite bool
	// ExtraLibs are additional directories searched when the dynamic linker
	// cannot resolve a library.
	ExtraLibs []string
	// ExcludeLibs are additional library names excluded from bundling.
	ExcludeLibs []string
	// KeepLibs are additional library names bundled even when the exclude
	// list matches them.
	KeepLibs []string
	// ConfigFile optionally names the configuration file to load instead of
	// the default one in the working directory.
	ConfigFile string
}
