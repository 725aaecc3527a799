package ldd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/qtdeploy/internal/adapters/logger"
	"go.trai.ch/qtdeploy/internal/adapters/shell"
	"go.trai.ch/qtdeploy/internal/core/ports"
)

const NodeID graft.ID = "adapter.lister"

func init() {
	graft.Register(graft.Node[ports.DependencyLister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyLister, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(runner, log), nil
		},
	})
}
