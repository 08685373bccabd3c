package gltf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	qgltf "github.com/qmuntal/gltf"
)

// Verify re-decodes a produced GLB blob through an independent glTF parser
// and cross-checks the container arithmetic: header fields, chunk layout,
// buffer-view tiling and accessor sizes. It is used by the -validate CLI
// flag and by tests; a failure here means the output would not open in a
// standard viewer.
func Verify(blob []byte) error {
	if len(blob) < headerSize+2*chunkHeaderSize {
		return fmt.Errorf("blob too short: %d bytes", len(blob))
	}
	if magic := binary.LittleEndian.Uint32(blob[0:4]); magic != headerMagic {
		return fmt.Errorf("bad magic 0x%08x", magic)
	}
	if version := binary.LittleEndian.Uint32(blob[4:8]); version != headerVersion {
		return fmt.Errorf("bad version %d", version)
	}
	if total := binary.LittleEndian.Uint32(blob[8:12]); int(total) != len(blob) {
		return fmt.Errorf("declared length %d, actual %d", total, len(blob))
	}

	var doc qgltf.Document
	if err := qgltf.NewDecoder(bytes.NewReader(blob)).Decode(&doc); err != nil {
		return fmt.Errorf("independent decode: %w", err)
	}

	if len(doc.Scenes) != 1 || len(doc.Nodes) != 1 || len(doc.Meshes) != 1 {
		return fmt.Errorf("expected 1 scene/node/mesh, got %d/%d/%d",
			len(doc.Scenes), len(doc.Nodes), len(doc.Meshes))
	}
	if len(doc.Meshes[0].Primitives) != 1 {
		return fmt.Errorf("expected 1 primitive, got %d", len(doc.Meshes[0].Primitives))
	}
	if len(doc.Buffers) != 1 {
		return fmt.Errorf("expected 1 buffer, got %d", len(doc.Buffers))
	}

	// Views must tile the payload back-to-back with no gaps or overlap.
	views := make([]*qgltf.BufferView, len(doc.BufferViews))
	copy(views, doc.BufferViews)
	sort.Slice(views, func(i, j int) bool { return views[i].ByteOffset < views[j].ByteOffset })
	offset := uint32(0)
	for i, v := range views {
		if v.ByteOffset != offset {
			return fmt.Errorf("view %d starts at %d, want %d", i, v.ByteOffset, offset)
		}
		offset += v.ByteLength
	}
	if offset != doc.Buffers[0].ByteLength {
		return fmt.Errorf("views span %d bytes, buffer declares %d", offset, doc.Buffers[0].ByteLength)
	}

	for i, a := range doc.Accessors {
		if a.BufferView == nil {
			return fmt.Errorf("accessor %d has no buffer view", i)
		}
		size := componentSize(a.ComponentType) * typeArity(a.Type) * a.Count
		view := doc.BufferViews[*a.BufferView]
		if size != view.ByteLength {
			return fmt.Errorf("accessor %d spans %d bytes, view %d holds %d",
				i, size, *a.BufferView, view.ByteLength)
		}
	}
	return nil
}

func componentSize(c qgltf.ComponentType) uint32 {
	switch c {
	case qgltf.ComponentUshort:
		return 2
	case qgltf.ComponentUint, qgltf.ComponentFloat:
		return 4
	default:
		return 0
	}
}

func typeArity(t qgltf.AccessorType) uint32 {
	switch t {
	case qgltf.AccessorScalar:
		return 1
	case qgltf.AccessorVec3:
		return 3
	case qgltf.AccessorVec4:
		return 4
	default:
		return 0
	}
}
