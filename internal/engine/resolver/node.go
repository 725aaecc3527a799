package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/qtdeploy/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/ldd"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/qtdeploy/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ldd.NodeID,
			fs.SearcherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			lister, err := graft.Dep[ports.DependencyLister](ctx)
			if err != nil {
				return nil, err
			}

			searcher, err := graft.Dep[ports.LibrarySearcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(lister, searcher, log), nil
		},
	})
}
