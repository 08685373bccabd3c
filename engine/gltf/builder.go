package gltf

import (
	"github.com/spaghettifunk/photomesh/engine/geometry"
)

const generatorName = "photomesh"

// BuildDocument packs the mesh attribute arrays and produces the scene
// description referencing them: one scene, one node, one mesh, one
// primitive. The sphere path packs position, normal, colour, index; the
// cube path packs position, index, normal and carries no colour stream.
// Both orderings are part of the output contract.
func BuildDocument(cfg *geometry.Config) (*Document, []byte) {
	packer := NewPacker()
	doc := &Document{
		Asset:  Asset{Generator: generatorName, Version: "2.0"},
		Scene:  0,
		Scenes: []Scene{{Nodes: []int{0}}},
		Nodes:  []Node{{Mesh: 0, Name: cfg.Name}},
	}

	attributes := map[string]int{}
	var indicesAccessor int

	if cfg.Shape == geometry.ShapeCube {
		posView := packer.PutVec3(cfg.Positions)
		idxView := packer.PutIndices(cfg.Indices, cfg.IndexSize)
		nrmView := packer.PutVec3(cfg.Normals)

		attributes[SemanticPosition] = doc.addAccessor(positionAccessor(cfg, posView))
		indicesAccessor = doc.addAccessor(indexAccessor(cfg, idxView))
		attributes[SemanticNormal] = doc.addAccessor(Accessor{
			BufferView:    nrmView,
			ComponentType: ComponentFloat,
			Count:         len(cfg.Normals),
			Type:          TypeVec3,
		})
	} else {
		if len(cfg.Colours) == 0 {
			cfg.Colours = geometry.Colorize(nil, cfg.VertexCount)
		}
		posView := packer.PutVec3(cfg.Positions)
		nrmView := packer.PutVec3(cfg.Normals)
		colView := packer.PutVec4(cfg.Colours)
		idxView := packer.PutIndices(cfg.Indices, cfg.IndexSize)

		attributes[SemanticPosition] = doc.addAccessor(positionAccessor(cfg, posView))
		attributes[SemanticNormal] = doc.addAccessor(Accessor{
			BufferView:    nrmView,
			ComponentType: ComponentFloat,
			Count:         len(cfg.Normals),
			Type:          TypeVec3,
		})
		attributes[SemanticColor] = doc.addAccessor(Accessor{
			BufferView:    colView,
			ComponentType: ComponentFloat,
			Count:         len(cfg.Colours),
			Type:          TypeVec4,
		})
		indicesAccessor = doc.addAccessor(indexAccessor(cfg, idxView))
	}

	material := 0
	doc.Materials = []Material{materialFor(cfg.Shape)}
	doc.Meshes = []Mesh{{
		Name: cfg.Name,
		Primitives: []Primitive{{
			Attributes: attributes,
			Indices:    indicesAccessor,
			Material:   &material,
		}},
	}}

	bin := packer.Bytes()
	doc.BufferViews = packer.Views()
	doc.Buffers = []Buffer{{ByteLength: len(bin)}}
	return doc, bin
}

func (d *Document) addAccessor(a Accessor) int {
	d.Accessors = append(d.Accessors, a)
	return len(d.Accessors) - 1
}

// The position accessor is the only one carrying min/max bounds; consumers
// use them for culling. Bounds are the true extents of the generated
// vertices, not a hardcoded unit box.
func positionAccessor(cfg *geometry.Config, view int) Accessor {
	return Accessor{
		BufferView:    view,
		ComponentType: ComponentFloat,
		Count:         len(cfg.Positions),
		Type:          TypeVec3,
		Min:           []float32{cfg.Extents.Min.X, cfg.Extents.Min.Y, cfg.Extents.Min.Z},
		Max:           []float32{cfg.Extents.Max.X, cfg.Extents.Max.Y, cfg.Extents.Max.Z},
	}
}

func indexAccessor(cfg *geometry.Config, view int) Accessor {
	componentType := ComponentUnsignedInt
	if cfg.IndexSize == 2 {
		componentType = ComponentUnsignedShort
	}
	return Accessor{
		BufferView:    view,
		ComponentType: componentType,
		Count:         len(cfg.Indices),
		Type:          TypeScalar,
	}
}

func materialFor(shape geometry.Shape) Material {
	if shape == geometry.ShapeCube {
		return Material{
			Name: "cube",
			PBRMetallicRoughness: &PBRMetallicRoughness{
				BaseColorFactor: [4]float32{0.5, 0.5, 0.5, 1.0},
				MetallicFactor:  0.5,
				RoughnessFactor: 0.5,
			},
		}
	}
	return Material{
		Name: "generated",
		PBRMetallicRoughness: &PBRMetallicRoughness{
			BaseColorFactor: [4]float32{1.0, 1.0, 1.0, 1.0},
			MetallicFactor:  0.3,
			RoughnessFactor: 0.7,
		},
	}
}
