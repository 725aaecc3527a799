package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/qtdeploy/internal/core/domain"
)

func libs(paths ...string) []domain.Library {
	out := make([]domain.Library, len(paths))
	for i, p := range paths {
		out[i] = domain.Library{Name: p, Path: p}
	}
	return out
}

func TestAnalyzeComponents_GuiPullsPlatformPlugin(t *testing.T) {
	c := domain.AnalyzeComponents(libs(
		"/usr/lib/libQt5Core.so.5",
		"/usr/lib/libQt5Gui.so.5",
	))

	assert.Equal(t, domain.Qt5, c.Version)
	assert.Contains(t, c.Plugins, "platforms/libqxcb.so")
	assert.Contains(t, c.Plugins, "imageformats")
	assert.Contains(t, c.QtLibraries, "libQt5Gui")
	assert.False(t, c.WebEngine)
}

func TestAnalyzeComponents_Qt6(t *testing.T) {
	c := domain.AnalyzeComponents(libs(
		"/usr/lib/libQt6Core.so.6",
		"/usr/lib/libQt6Gui.so.6",
		"/usr/lib/libQt6Network.so.6",
	))

	assert.Equal(t, domain.Qt6, c.Version)
	assert.Contains(t, c.Plugins, "tls")
	assert.Contains(t, c.Plugins, "accessible")
	assert.Contains(t, c.Plugins, "platforms/libqxcb.so")
}

func TestAnalyzeComponents_WebEngine(t *testing.T) {
	c := domain.AnalyzeComponents(libs(
		"/usr/lib/libQt5Core.so.5",
		"/usr/lib/libQt5WebEngineCore.so.5",
	))

	assert.True(t, c.WebEngine)
}

func TestAnalyzeComponents_NoQt(t *testing.T) {
	c := domain.AnalyzeComponents(libs(
		"/usr/lib/libpng16.so.16",
		"/lib/libc.so.6",
	))

	assert.Equal(t, domain.QtUnknown, c.Version)
	assert.Empty(t, c.QtLibraries)
	assert.Empty(t, c.Plugins)
}

func TestAnalyzeComponents_SqlDrivers(t *testing.T) {
	c := domain.AnalyzeComponents(libs(
		"/usr/lib/libQt5Core.so.5",
		"/usr/lib/libQt5Sql.so.5",
	))

	assert.Contains(t, c.Plugins, "sqldrivers")
	assert.NotContains(t, c.Plugins, "platforms/libqxcb.so")
}

func TestDetectQtVersion(t *testing.T) {
	tests := []struct {
		path string
		want domain.QtVersion
	}{
		{"/usr/lib/libQt5Core.so.5", domain.Qt5},
		{"/usr/lib/libQt6Widgets.so.6", domain.Qt6},
		{"/usr/lib/libQtGui.so.4", domain.QtUnknown},
		{"/opt/qt4/libqt4core.so", domain.Qt4},
		{"/usr/lib/libpng.so.16", domain.QtUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.DetectQtVersion(tt.path), tt.path)
	}
}
