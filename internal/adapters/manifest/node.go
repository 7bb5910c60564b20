package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinset/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the manifest reader Graft node.
	ReaderNodeID graft.ID = "adapter.manifest_reader"
	// WriterNodeID is the unique identifier for the manifest writer Graft node.
	WriterNodeID graft.ID = "adapter.manifest_writer"
)

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestWriter, error) {
			return NewWriter(), nil
		},
	})
}
