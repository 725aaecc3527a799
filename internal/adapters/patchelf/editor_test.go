package patchelf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/qtdeploy/internal/adapters/patchelf"
	"go.trai.ch/qtdeploy/internal/core/ports/mocks"
)

func TestEditor_ReadRunPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "patchelf", "--print-rpath", "/appdir/lib/libfoo.so").
		Return([]byte("$ORIGIN:$ORIGIN/../lib\n"), nil)

	e := patchelf.NewEditor(runner)
	rp, err := e.ReadRunPath(context.Background(), "/appdir/lib/libfoo.so")
	require.NoError(t, err)
	assert.Equal(t, "$ORIGIN:$ORIGIN/../lib", rp)
}

func TestEditor_SetRunPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "patchelf", "--set-rpath", "$ORIGIN", "/appdir/app").
		Return(nil, nil)

	e := patchelf.NewEditor(runner)
	require.NoError(t, e.SetRunPath(context.Background(), "/appdir/app", "$ORIGIN"))
}

func TestEditor_ClearRunPath_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "patchelf", "--remove-rpath", "/appdir/app").
		Return(nil, assert.AnError)

	e := patchelf.NewEditor(runner)
	assert.Error(t, e.ClearRunPath(context.Background(), "/appdir/app"))
}

func TestEditor_Available(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().LookPath("patchelf").Return("/usr/bin/patchelf", nil)

	e := patchelf.NewEditor(runner)
	assert.True(t, e.Available())
}
