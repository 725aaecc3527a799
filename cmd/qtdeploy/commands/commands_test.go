package commands_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/qtdeploy/cmd/qtdeploy/commands"
	"go.trai.ch/qtdeploy/internal/adapters/logger"
	"go.trai.ch/qtdeploy/internal/app"
	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestCLI(t *testing.T, loader *mocks.MockConfigLoader) *commands.CLI {
	t.Helper()

	// The deploy path under test stops before the pipeline runs, so the
	// application is wired without one.
	a := app.New(loader, nil)
	return commands.New(app.NewComponents(a, logger.New()))
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := newTestCLI(t, mocks.NewMockConfigLoader(ctrl))
	cli.SetArgs([]string{"--help"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := newTestCLI(t, mocks.NewMockConfigLoader(ctrl))
	cli.SetArgs([]string{"version"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for version, got: %v", err)
	}
}

func TestDeploy_NoBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	cli := newTestCLI(t, mockLoader)
	cli.SetArgs([]string{"deploy"})

	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrBinaryNotFound) {
		t.Errorf("Expected ErrBinaryNotFound, got: %v", err)
	}
}

func TestDeploy_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(errors.New("bad yaml")).Times(1)

	cli := newTestCLI(t, mockLoader)
	cli.SetArgs([]string{"deploy", "--binary-path", "/opt/app/bin/app"})

	if err := cli.Execute(context.Background()); err == nil {
		t.Error("Expected configuration error, got nil")
	}
}
