package ports

import (
	"context"

	"go.trai.ch/qtdeploy/internal/core/domain"
)

// QtLocator discovers a framework install and its directory layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=qtlocator.go -destination=mocks/mock_qtlocator.go -package=mocks
type QtLocator interface {
	// Locate finds a usable qmake and queries it for the install paths.
	//
	// hint optionally pins the install root to search first; version narrows
	// discovery to a versioned qmake binary when known.
	Locate(ctx context.Context, hint string, version domain.QtVersion) (domain.QtInstall, error)
}
