package ports

import "go.trai.ch/qtdeploy/internal/core/domain"

// ConfigLoader defines the interface for loading deployment defaults.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project configuration from the given working directory
	// and fills unset fields of the request. Values already present on the
	// request are left alone, so command-line flags win over file values.
	Load(cwd string, req *domain.DeployRequest) error
}
