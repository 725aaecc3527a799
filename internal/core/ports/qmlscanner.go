package ports

import (
	"context"

	"go.trai.ch/qtdeploy/internal/core/domain"
)

// QMLScanner finds the QML modules imported by an application's QML sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=qmlscanner.go -destination=mocks/mock_qmlscanner.go -package=mocks
type QMLScanner interface {
	// Scan runs the framework's import scanner over the given source trees
	// and returns the modules they import.
	Scan(ctx context.Context, install domain.QtInstall, sourceDirs []string) ([]domain.QMLModule, error)
}
