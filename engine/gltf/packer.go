package gltf

import (
	"bytes"
	"encoding/binary"
	stdmath "math"

	"github.com/spaghettifunk/photomesh/engine/math"
)

// Packer concatenates typed attribute arrays into one contiguous
// little-endian byte buffer, recording a back-to-back buffer view for each
// array. Packing order is significant: the scene description references
// views by the order they were put.
type Packer struct {
	buf   bytes.Buffer
	views []BufferView
}

func NewPacker() *Packer {
	return &Packer{}
}

// PutVec3 appends a vec3 float32 array and returns its view index.
func (p *Packer) PutVec3(values []math.Vec3) int {
	start := p.buf.Len()
	var scratch [4]byte
	for _, v := range values {
		for _, c := range [3]float32{v.X, v.Y, v.Z} {
			binary.LittleEndian.PutUint32(scratch[:], stdmath.Float32bits(c))
			p.buf.Write(scratch[:])
		}
	}
	return p.addView(start, TargetArrayBuffer)
}

// PutVec4 appends a vec4 float32 array and returns its view index.
func (p *Packer) PutVec4(values []math.Vec4) int {
	start := p.buf.Len()
	var scratch [4]byte
	for _, v := range values {
		for _, c := range [4]float32{v.X, v.Y, v.Z, v.W} {
			binary.LittleEndian.PutUint32(scratch[:], stdmath.Float32bits(c))
			p.buf.Write(scratch[:])
		}
	}
	return p.addView(start, TargetArrayBuffer)
}

// PutIndices appends the index array with the requested width in bytes
// (2 or 4) and returns its view index. Values must fit the chosen width;
// the generators guarantee this.
func (p *Packer) PutIndices(indices []uint32, indexSize uint32) int {
	start := p.buf.Len()
	var scratch [4]byte
	for _, idx := range indices {
		if indexSize == 2 {
			binary.LittleEndian.PutUint16(scratch[:2], uint16(idx))
			p.buf.Write(scratch[:2])
		} else {
			binary.LittleEndian.PutUint32(scratch[:], idx)
			p.buf.Write(scratch[:])
		}
	}
	return p.addView(start, TargetElementArrayBuffer)
}

func (p *Packer) addView(start, target int) int {
	p.views = append(p.views, BufferView{
		Buffer:     0,
		ByteOffset: start,
		ByteLength: p.buf.Len() - start,
		Target:     target,
	})
	return len(p.views) - 1
}

// Views returns the recorded buffer views in packing order.
func (p *Packer) Views() []BufferView {
	return p.views
}

// Bytes returns the packed payload. No padding is inserted between views;
// chunk-level alignment is applied by the container assembler.
func (p *Packer) Bytes() []byte {
	return p.buf.Bytes()
}
