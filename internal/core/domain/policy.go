package domain

import (
	"path/filepath"
	"strings"
)

// BundleMode selects how aggressively resolved shared libraries are copied
// into the AppDir.
type BundleMode int

const (
	// BundleDefault bundles framework libraries and the support libraries the
	// framework's plugins are known to need.
	BundleDefault BundleMode = iota
	// BundleAllButCore bundles every dependency except low-level system
	// libraries on the exclude list.
	BundleAllButCore
	// BundleEverything bundles every resolved dependency unconditionally.
	BundleEverything
)

// String returns the string representation of the BundleMode.
func (m BundleMode) String() string {
	switch m {
	case BundleAllButCore:
		return "all-but-core"
	case BundleEverything:
		return "everything"
	default:
		return "default"
	}
}

// Decision is the outcome of a bundling policy check for a single library.
type Decision int

const (
	// DecisionExclude leaves the library to be provided by the host system.
	DecisionExclude Decision = iota
	// DecisionBundle copies the library into the AppDir.
	DecisionBundle
)

// excludedLibraries follows the AppImage excludelist: system libraries
// assumed present on every target distribution.
var excludedLibraries = []string{
	"ld-linux.so.2",
	"ld-linux-x86-64.so.2",
	"libanl.so.1",
	"libasound.so.2",
	"libBrokenLocale.so.1",
	"libcidn.so.1",
	"libcom_err.so.2",
	"libc.so.6",
	"libdl.so.2",
	"libdrm.so.2",
	"libEGL.so.1",
	"libexpat.so.1",
	"libfontconfig.so.1",
	"libfreetype.so.6",
	"libfribidi.so.0",
	"libgbm.so.1",
	"libgcc_s.so.1",
	"libgdk_pixbuf-2.0.so.0",
	"libgio-2.0.so.0",
	"libglapi.so.0",
	"libGLdispatch.so.0",
	"libglib-2.0.so.0",
	"libGL.so.1",
	"libGLX.so.0",
	"libgobject-2.0.so.0",
	"libgpg-error.so.0",
	"libharfbuzz.so.0",
	"libICE.so.6",
	"libjack.so.0",
	"libm.so.6",
	"libmvec.so.1",
	"libnss_compat.so.2",
	"libnss_db.so.2",
	"libnss_dns.so.2",
	"libnss_files.so.2",
	"libnss_hesiod.so.2",
	"libnss_nisplus.so.2",
	"libnss_nis.so.2",
	"libp11-kit.so.0",
	"libpango-1.0.so.0",
	"libpangocairo-1.0.so.0",
	"libpangoft2-1.0.so.0",
	"libpthread.so.0",
	"libresolv.so.2",
	"librt.so.1",
	"libSM.so.6",
	"libstdc++.so.6",
	"libthai.so.0",
	"libthread_db.so.1",
	"libusb-1.0.so.0",
	"libutil.so.1",
	"libuuid.so.1",
	"libX11.so.6",
	"libxcb-dri2.so.0",
	"libxcb-dri3.so.0",
	"libxcb.so.1",
	"libz.so.1",
}

// neverExcluded overrides the exclude list for libraries the bundled framework
// cannot run without on older distributions.
var neverExcluded = []string{
	"libQt5Concurrent.so",
	"libQt5QuickControls2.so",
	"libQt5Svg.so",
	"libQt5Widgets.so",
	"libQt5Gui.so",
	"libQt5Core.so",
	"libQt5Network.so",
	"libQt5PrintSupport.so",
	"libQt5Sql.so",
	"libQt5Test.so",
	"libQt5XcbQpa.so",
	"libQt5DBus.so",
	"libQt5XcbQpa.so.5",
	"libQt5DBus.so.5",
	"libQt6XcbQpa.so",
	"libQt6DBus.so",
	"libQt6XcbQpa.so.6",
	"libQt6DBus.so.6",
	"libQt5QuickTemplates2.so",
	"libQt5QuickControls2.so.5",
	"libQt5QuickTemplates2.so.5",
	"libQt6QuickControls2.so",
	"libQt6QuickTemplates2.so",
	"libQt6QuickControls2.so.6",
	"libQt6QuickTemplates2.so.6",
	"libxcb-render-util.so",
	"libxcb-image.so",
	"libxcb-icccm.so",
	"libxcb-shm.so",
	"libxcb-keysyms.so",
	"libxcb-randr.so",
	"libxcb-render.so",
	"libxcb-shape.so",
	"libxcb-sync.so",
	"libxcb-xfixes.so",
	"libxcb-xkb.so",
}

// nssLibraries are the certificate and crypto libraries QtWebEngine loads at
// runtime. They are bundled in every mode.
var nssLibraries = []string{
	"libsoftokn3.so",
	"libfreebl3.so",
	"libnss3.so",
	"libnssutil3.so",
	"libsmime3.so",
	"libssl3.so",
	"libsqlite3.so",
}

// criticalQtPatterns are framework libraries that dlopen at runtime and are
// missed by plain link-time resolution.
var criticalQtPatterns = []string{
	"libqt5xcbqpa",
	"libqt5dbus",
	"libqt6xcbqpa",
	"libqt6dbus",
	"libqt5quickcontrols2",
	"libqt5quicktemplates2",
	"libqt6quickcontrols2",
	"libqt6quicktemplates2",
	"libqt5webengine",
	"libqt5webenginecore",
	"libqt5webenginewidgets",
	"libqt6webengine",
	"libqt6webenginecore",
	"libqt6webenginewidgets",
	"libqt5test",
	"libqt6test",
	"libqt4test",
}

// xcbExtensionPatterns are the xcb extension libraries the platform plugin
// needs. Missing ones surface as "could not load the Qt platform plugin".
var xcbExtensionPatterns = []string{
	"libxcb-dpms",
	"libxcb-icccm",
	"libxcb-image",
	"libxcb-keysyms",
	"libxcb-present",
	"libxcb-randr",
	"libxcb-render",
	"libxcb-render-util",
	"libxcb-shape",
	"libxcb-shm",
	"libxcb-sync",
	"libxcb-util",
	"libxcb-xfixes",
	"libxcb-xinerama",
	"libxcb-xkb",
	"libxcb-xinput",
}

// qtQuickPatterns are the QML runtime libraries required by any Quick
// application.
var qtQuickPatterns = []string{
	"libqt5quick",
	"libqt6quick",
	"libqt5qml",
	"libqt6qml",
	"libqt5declarative",
	"libqt6declarative",
}

// BundlingPolicy decides, per resolved library, whether it is copied into the
// AppDir or left to the host system. The zero value is the default policy.
type BundlingPolicy struct {
	Mode BundleMode
	// ExtraExcluded extends the exclude list with project-specific names.
	ExtraExcluded []string
	// ExtraKept overrides exclusion for project-specific names, like the
	// built-in never-exclude list does for the framework libraries.
	ExtraKept []string
}

// NewBundlingPolicy creates a policy with the given mode.
func NewBundlingPolicy(mode BundleMode) *BundlingPolicy {
	return &BundlingPolicy{Mode: mode}
}

// Decide returns the bundling decision for a library path. Only the basename
// participates in matching; an empty path is excluded.
func (p *BundlingPolicy) Decide(libraryPath string) Decision {
	if libraryPath == "" {
		return DecisionExclude
	}

	name := filepath.Base(libraryPath)

	// NSS libraries ride along in every mode so QtWebEngine keeps working.
	for _, nss := range nssLibraries {
		if strings.HasPrefix(name, nss) {
			return DecisionBundle
		}
	}

	if p.Mode == BundleEverything {
		return DecisionBundle
	}

	if p.Mode == BundleAllButCore {
		if p.IsExcluded(libraryPath) {
			return DecisionExclude
		}
		return DecisionBundle
	}

	// Project-specific overrides: keep wins over exclude, and an exclusion
	// beats the framework whitelist below so a config file can pin individual
	// framework libraries to the host.
	for _, keep := range p.ExtraKept {
		if matchesVersioned(name, keep) {
			return DecisionBundle
		}
	}
	for _, excluded := range p.ExtraExcluded {
		if matchesVersioned(name, excluded) {
			return DecisionExclude
		}
	}

	lower := strings.ToLower(name)

	// ICU carries the framework's unicode tables and never matches by prefix.
	if strings.Contains(lower, "libicu") {
		return DecisionBundle
	}

	if strings.Contains(lower, "libqt") {
		return DecisionBundle
	}

	for _, pattern := range criticalQtPatterns {
		if strings.Contains(lower, pattern) {
			return DecisionBundle
		}
	}

	for _, pattern := range xcbExtensionPatterns {
		if strings.Contains(lower, pattern) {
			return DecisionBundle
		}
	}

	if strings.Contains(lower, "libqgsttools") {
		return DecisionBundle
	}

	for _, pattern := range qtQuickPatterns {
		if strings.Contains(lower, pattern) {
			return DecisionBundle
		}
	}

	if strings.Contains(lower, "boost") {
		return DecisionBundle
	}

	return DecisionExclude
}

// IsExcluded reports whether the library matches the system exclude list.
// The never-exclude overrides and the NSS set win over the exclude list.
func (p *BundlingPolicy) IsExcluded(libraryPath string) bool {
	if libraryPath == "" {
		return true
	}

	name := filepath.Base(libraryPath)

	for _, nss := range nssLibraries {
		if strings.HasPrefix(name, nss) {
			return false
		}
	}

	for _, keep := range neverExcluded {
		if matchesVersioned(name, keep) {
			return false
		}
	}
	for _, keep := range p.ExtraKept {
		if matchesVersioned(name, keep) {
			return false
		}
	}

	for _, excluded := range excludedLibraries {
		if matchesVersioned(name, excluded) {
			return true
		}
	}
	for _, excluded := range p.ExtraExcluded {
		if matchesVersioned(name, excluded) {
			return true
		}
	}

	return false
}

// matchesVersioned reports whether name equals base or is base followed by a
// further version component, so "libc.so.6.1" matches "libc.so.6".
func matchesVersioned(name, base string) bool {
	return name == base || strings.HasPrefix(name, base+".")
}
