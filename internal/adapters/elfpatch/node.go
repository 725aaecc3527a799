package elfpatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/qtdeploy/internal/adapters/logger"
	"go.trai.ch/qtdeploy/internal/core/ports"
)

const NodeID graft.ID = "adapter.stackpatcher"

func init() {
	graft.Register(graft.Node[ports.StackPatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.StackPatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPatcher(log), nil
		},
	})
}
