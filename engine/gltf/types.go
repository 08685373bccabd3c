// Package gltf builds glTF 2.0 scene descriptions and serializes them into
// the GLB binary container.
package gltf

// accessor.componentType values.
const (
	ComponentUnsignedShort = 5123
	ComponentUnsignedInt   = 5125
	ComponentFloat         = 5126
)

// accessor.type values.
const (
	TypeScalar = "SCALAR"
	TypeVec3   = "VEC3"
	TypeVec4   = "VEC4"
)

// bufferView.target values.
const (
	TargetArrayBuffer        = 34962
	TargetElementArrayBuffer = 34963
)

// Primitive attribute semantics.
const (
	SemanticPosition = "POSITION"
	SemanticNormal   = "NORMAL"
	SemanticColor    = "COLOR_0"
)

// Document is the root glTF object serialized into the JSON chunk.
type Document struct {
	Asset       Asset        `json:"asset"`
	Scene       int          `json:"scene"`
	Scenes      []Scene      `json:"scenes"`
	Nodes       []Node       `json:"nodes"`
	Meshes      []Mesh       `json:"meshes"`
	Materials   []Material   `json:"materials,omitempty"`
	Accessors   []Accessor   `json:"accessors"`
	BufferViews []BufferView `json:"bufferViews"`
	Buffers     []Buffer     `json:"buffers"`
}

type Asset struct {
	Generator string `json:"generator,omitempty"`
	Version   string `json:"version"`
}

type Scene struct {
	Nodes []int `json:"nodes"`
}

type Node struct {
	Mesh int    `json:"mesh"`
	Name string `json:"name,omitempty"`
}

type Mesh struct {
	Primitives []Primitive `json:"primitives"`
	Name       string      `json:"name,omitempty"`
}

// Primitive maps semantic slots to accessor indices.
type Primitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Material   *int           `json:"material,omitempty"`
}

type Material struct {
	Name                 string                `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
}

type PBRMetallicRoughness struct {
	BaseColorFactor [4]float32 `json:"baseColorFactor"`
	MetallicFactor  float32    `json:"metallicFactor"`
	RoughnessFactor float32    `json:"roughnessFactor"`
}

// Accessor describes how to interpret one buffer view as typed elements.
type Accessor struct {
	BufferView    int       `json:"bufferView"`
	ByteOffset    int       `json:"byteOffset,omitempty"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

// BufferView is one contiguous region of the packed binary payload.
type BufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target,omitempty"`
}

type Buffer struct {
	ByteLength int `json:"byteLength"`
}
