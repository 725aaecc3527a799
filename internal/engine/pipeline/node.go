package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/qtdeploy/internal/adapters/elfpatch"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/patchelf"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/qmake"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/qmlscan"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/strip"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/qtdeploy/internal/engine/resolver"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
			qmake.NodeID,
			resolver.NodeID,
			fs.CopierNodeID,
			fs.WalkerNodeID,
			patchelf.NodeID,
			strip.NodeID,
			elfpatch.NodeID,
			qmlscan.NodeID,
			manifest.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.QtLocator](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			deployer, err := graft.Dep[ports.FileDeployer](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[ports.FileWalker](ctx)
			if err != nil {
				return nil, err
			}

			editor, err := graft.Dep[ports.RunPathEditor](ctx)
			if err != nil {
				return nil, err
			}

			stripper, err := graft.Dep[ports.Stripper](ctx)
			if err != nil {
				return nil, err
			}

			patcher, err := graft.Dep[ports.StackPatcher](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.QMLScanner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			return New(Deps{
				Logger:   log,
				Tracer:   tracer,
				Locator:  locator,
				Resolver: res,
				Deployer: deployer,
				Walker:   walker,
				Editor:   editor,
				Stripper: stripper,
				Patcher:  patcher,
				Scanner:  scanner,
				Store:    store,
			}), nil
		},
	})
}
