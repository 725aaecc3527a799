package config

// Deployfile represents the structure of the qtdeploy.yaml configuration file.
// Every field is optional; values only apply where the corresponding command
// line flag was not given.
type Deployfile struct {
	Binary          string   `yaml:"binary"`
	Output          string   `yaml:"output"`
	QMLDirs         []string `yaml:"qmlDirs"`
	QtPath          string   `yaml:"qtPath"`
	DesktopFile     string   `yaml:"desktopFile"`
	Icon            string   `yaml:"icon"`
	AppRun          string   `yaml:"appRun"`
	BundleMode      string   `yaml:"bundleMode"`
	Strip           *bool    `yaml:"strip"`
	AlwaysOverwrite bool     `yaml:"alwaysOverwrite"`
	ExtraLibs       []string `yaml:"extraLibs"`
	ExcludeLibs     []string `yaml:"excludeLibs"`
	KeepLibs        []string `yaml:"keepLibs"`
}
