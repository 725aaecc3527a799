// Package build holds build-time information about the qtdeploy binary.
package build

// Version is the qtdeploy version reported by the version command.
// It defaults to "dev" and is overwritten by linker flags in release builds.
var Version = "dev"
