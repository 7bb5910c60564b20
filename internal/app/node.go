package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinset/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pinset/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pinset/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinset/internal/adapters/sources"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pinset/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.ReaderNodeID,
			manifest.WriterNodeID,
			sources.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.SourceFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reader, writer, factory, log), nil
}
