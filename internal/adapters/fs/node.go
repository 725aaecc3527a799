package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/qtdeploy/internal/adapters/logger"
	"go.trai.ch/qtdeploy/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	CopierNodeID   graft.ID = "adapter.fs.copier"
	SearcherNodeID graft.ID = "adapter.fs.searcher"
)

func init() {
	// Walker Node
	graft.Register(graft.Node[ports.FileWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileWalker, error) {
			return NewWalker(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.FileHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileHasher, error) {
			return NewHasher(), nil
		},
	})

	// Copier Node
	graft.Register(graft.Node[ports.FileDeployer]{
		ID:        CopierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.FileDeployer, error) {
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCopier(hasher, log), nil
		},
	})

	// Searcher Node
	graft.Register(graft.Node[ports.LibrarySearcher]{
		ID:        SearcherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LibrarySearcher, error) {
			return NewSearcher(), nil
		},
	})
}
