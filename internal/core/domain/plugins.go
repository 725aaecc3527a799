package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// qt5PluginMap maps a Qt 5 library base name to the plugin directories (or
// single plugin files) that must ship alongside it.
var qt5PluginMap = map[string][]string{
	"libQt5Gui": {
		"platforms/libqxcb.so",
		"platforminputcontexts",
		"iconengines",
		"imageformats",
	},
	"libQt5OpenGL":       {"xcbglintegrations"},
	"libQt5Svg":          {"iconengines/libqsvgicon.so"},
	"libQt5PrintSupport": {"printsupport"},
	"libQt5Network":      {"bearer"},
	"libQt5Sql":          {"sqldrivers"},
	"libQt5Positioning":  {"position"},
	"libQt5Multimedia":   {"audio", "mediaservice"},
	"libQt53DRender": {
		"geometryloaders",
		"renderers",
		"renderplugins",
		"sceneparsers",
	},
	"libQt5WebEngineCore": {},
}

// qt6PluginMap is the Qt 6 equivalent of qt5PluginMap.
var qt6PluginMap = map[string][]string{
	"libQt6Gui": {
		"platforms/libqxcb.so",
		"platforminputcontexts",
		"iconengines",
		"imageformats",
		"accessible",
		"virtualkeyboard",
	},
	"libQt6OpenGL":       {"xcbglintegrations"},
	"libQt6Svg":          {"iconengines/libqsvgicon.so"},
	"libQt6PrintSupport": {"printsupport"},
	"libQt6Network":      {"networkaccess", "networkinformation", "tls"},
	"libQt6Sql":          {"sqldrivers"},
	"libQt6Positioning":  {"position"},
	"libQt6Multimedia": {
		"audio",
		"mediaservice",
		"playlistformats",
		"multimedia",
	},
	"libQt63DRender": {
		"geometryloaders",
		"renderers",
		"renderplugins",
		"sceneparsers",
	},
	"libQt6Sensors":      {"sensorgestures", "sensors"},
	"libQt6SerialBus":    {"canbus"},
	"libQt6TextToSpeech": {"texttospeech"},
	"libQt6Location":     {"geoservices"},
	"libQt6Quick":        {"qmltooling", "scenegraph"},
	"libQt6Declarative":  {"qml1tooling"},
	"libQt6Gamepad":      {"gamepads"},
	"libQt6WebView":      {"webview"},
	"libQt6WebEngineCore": {},
}

// Components describes what a binary's dependency closure demands from the
// framework install: libraries in use, plugins to deploy, and whether the
// WebEngine runtime must ride along.
type Components struct {
	QtLibraries []string
	Plugins     []string
	WebEngine   bool
	Version     QtVersion
}

// AnalyzeComponents derives the required framework components from a resolved
// dependency list. Plugin selection comes from the static per-library tables.
func AnalyzeComponents(libraries []Library) Components {
	qtLibs := make(map[string]struct{})
	for _, lib := range libraries {
		name := filepath.Base(lib.Path)
		if strings.HasPrefix(name, "libQt5") || strings.HasPrefix(name, "libQt6") {
			base, _, _ := strings.Cut(name, ".")
			qtLibs[base] = struct{}{}
		}
	}

	version := QtUnknown
	for lib := range qtLibs {
		if strings.HasPrefix(lib, "libQt6") {
			version = Qt6
			break
		}
		if strings.HasPrefix(lib, "libQt5") {
			version = Qt5
		}
	}

	pluginMap := qt5PluginMap
	if version == Qt6 {
		pluginMap = qt6PluginMap
	}

	plugins := make(map[string]struct{})
	for libName, pluginList := range pluginMap {
		for lib := range qtLibs {
			if strings.Contains(lib, libName) {
				for _, p := range pluginList {
					plugins[p] = struct{}{}
				}
				break
			}
		}
	}

	// The xcb platform plugin always ships with Gui; without it the bundle
	// cannot start on any display server.
	guiLib := "libQt5Gui"
	if version == Qt6 {
		guiLib = "libQt6Gui"
	}
	webengine := false
	for lib := range qtLibs {
		if strings.Contains(lib, guiLib) {
			plugins["platforms/libqxcb.so"] = struct{}{}
		}
		if strings.Contains(lib, "WebEngine") {
			webengine = true
		}
	}

	return Components{
		QtLibraries: sortedKeys(qtLibs),
		Plugins:     sortedKeys(plugins),
		WebEngine:   webengine,
		Version:     version,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
