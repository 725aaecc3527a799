package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports/mocks"
	"go.trai.ch/qtdeploy/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestResolve_WalksClosure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	lister.EXPECT().ListDependencies(gomock.Any(), "/src/app").Return([]domain.Library{
		{Name: "libQt6Widgets.so.6", Path: "/opt/qt6/lib/libQt6Widgets.so.6"},
		{Name: "libc.so.6", Path: "/usr/lib/libc.so.6"},
	}, nil)
	lister.EXPECT().ListDependencies(gomock.Any(), "/opt/qt6/lib/libQt6Widgets.so.6").Return([]domain.Library{
		{Name: "libQt6Core.so.6", Path: "/opt/qt6/lib/libQt6Core.so.6"},
		{Name: "libc.so.6", Path: "/usr/lib/libc.so.6"},
	}, nil)
	lister.EXPECT().ListDependencies(gomock.Any(), "/opt/qt6/lib/libQt6Core.so.6").Return([]domain.Library{
		{Name: "libicui18n.so.73", Path: "/usr/lib/libicui18n.so.73"},
	}, nil)
	lister.EXPECT().ListDependencies(gomock.Any(), "/usr/lib/libicui18n.so.73").Return(nil, nil)

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleDefault)

	res, err := r.Resolve(context.Background(), "/src/app", policy, nil)
	require.NoError(t, err)

	var bundled []string
	for _, lib := range res.Bundled {
		bundled = append(bundled, lib.Name)
	}
	assert.Equal(t, []string{"libQt6Core.so.6", "libQt6Widgets.so.6", "libicui18n.so.73"}, bundled)

	require.Len(t, res.Excluded, 1)
	assert.Equal(t, "libc.so.6", res.Excluded[0].Name)

	assert.Equal(t, domain.Qt6, res.Version)

	summary := res.Summary()
	assert.Equal(t, 3, summary.Bundled)
	assert.Equal(t, 1, summary.Excluded)
	assert.Equal(t, domain.Qt6, summary.Version)
}

func TestResolve_SearcherRecoversMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	lister.EXPECT().ListDependencies(gomock.Any(), "/src/app").Return([]domain.Library{
		{Name: "libvendor.so.1", Path: ""},
	}, nil)
	searcher.EXPECT().FindLibrary("libvendor.so.1", []string{"/opt/vendor/lib"}).
		Return("/opt/vendor/lib/libvendor.so.1")
	lister.EXPECT().ListDependencies(gomock.Any(), "/opt/vendor/lib/libvendor.so.1").Return(nil, nil)

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleEverything)

	res, err := r.Resolve(context.Background(), "/src/app", policy, []string{"/opt/vendor/lib"})
	require.NoError(t, err)
	require.Len(t, res.Bundled, 1)
	assert.Equal(t, "/opt/vendor/lib/libvendor.so.1", res.Bundled[0].Path)
}

func TestResolve_MissingLibraryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	lister.EXPECT().ListDependencies(gomock.Any(), "/src/app").Return([]domain.Library{
		{Name: "libgone.so.2", Path: ""},
	}, nil)
	searcher.EXPECT().FindLibrary("libgone.so.2", gomock.Any()).Return("")

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleDefault)

	_, err := r.Resolve(context.Background(), "/src/app", policy, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "libgone.so.2")
}

func TestResolve_ListerErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	boom := errors.New("ldd exploded")
	lister.EXPECT().ListDependencies(gomock.Any(), "/src/app").Return(nil, boom)

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleDefault)

	_, err := r.Resolve(context.Background(), "/src/app", policy, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestResolve_CyclicClosureTerminates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	// A -> B -> C -> A: the back edge must not re-enqueue an already walked
	// library, and all three end up bundled exactly once.
	libA := "/qt/lib/libQt5A.so.5"
	libB := "/qt/lib/libQt5B.so.5"
	libC := "/qt/lib/libQt5C.so.5"

	lister.EXPECT().ListDependencies(gomock.Any(), "/src/app").Return([]domain.Library{
		{Name: "libQt5A.so.5", Path: libA},
	}, nil).Times(1)
	lister.EXPECT().ListDependencies(gomock.Any(), libA).Return([]domain.Library{
		{Name: "libQt5B.so.5", Path: libB},
	}, nil).Times(1)
	lister.EXPECT().ListDependencies(gomock.Any(), libB).Return([]domain.Library{
		{Name: "libQt5C.so.5", Path: libC},
	}, nil).Times(1)
	lister.EXPECT().ListDependencies(gomock.Any(), libC).Return([]domain.Library{
		{Name: "libQt5A.so.5", Path: libA},
	}, nil).Times(1)

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleDefault)

	res, err := r.Resolve(context.Background(), "/src/app", policy, nil)
	require.NoError(t, err)

	var bundled []string
	for _, lib := range res.Bundled {
		bundled = append(bundled, lib.Name)
	}
	assert.Equal(t, []string{"libQt5A.so.5", "libQt5B.so.5", "libQt5C.so.5"}, bundled)
}

func TestResolve_TransitiveListerErrorIsTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	lister.EXPECT().ListDependencies(gomock.Any(), "/src/app").Return([]domain.Library{
		{Name: "libQt5Core.so.5", Path: "/qt/lib/libQt5Core.so.5"},
	}, nil)
	lister.EXPECT().ListDependencies(gomock.Any(), "/qt/lib/libQt5Core.so.5").
		Return(nil, errors.New("ldd exploded"))

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleDefault)

	res, err := r.Resolve(context.Background(), "/src/app", policy, nil)
	require.NoError(t, err)
	require.Len(t, res.Bundled, 1)
	assert.Equal(t, "libQt5Core.so.5", res.Bundled[0].Name)
}

func TestResolve_SharedDependencyVisitedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	// Both Qt libraries depend on the same ICU library; it must be listed
	// and walked exactly once.
	lister.EXPECT().ListDependencies(gomock.Any(), "/src/app").Return([]domain.Library{
		{Name: "libQt5Core.so.5", Path: "/qt/lib/libQt5Core.so.5"},
		{Name: "libQt5Gui.so.5", Path: "/qt/lib/libQt5Gui.so.5"},
	}, nil)
	lister.EXPECT().ListDependencies(gomock.Any(), "/qt/lib/libQt5Core.so.5").Return([]domain.Library{
		{Name: "libicuuc.so.73", Path: "/usr/lib/libicuuc.so.73"},
	}, nil)
	lister.EXPECT().ListDependencies(gomock.Any(), "/qt/lib/libQt5Gui.so.5").Return([]domain.Library{
		{Name: "libicuuc.so.73", Path: "/usr/lib/libicuuc.so.73"},
	}, nil)
	lister.EXPECT().ListDependencies(gomock.Any(), "/usr/lib/libicuuc.so.73").Return(nil, nil).Times(1)

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleDefault)

	res, err := r.Resolve(context.Background(), "/src/app", policy, nil)
	require.NoError(t, err)
	assert.Len(t, res.Bundled, 3)
	assert.Equal(t, domain.Qt5, res.Version)
}

func TestResolve_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockDependencyLister(ctrl)
	searcher := mocks.NewMockLibrarySearcher(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := resolver.NewResolver(lister, searcher, quietLogger(ctrl))
	policy := domain.NewBundlingPolicy(domain.BundleDefault)

	_, err := r.Resolve(ctx, "/src/app", policy, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
