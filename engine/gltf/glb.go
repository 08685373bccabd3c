package gltf

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// GLB container layout constants.
const (
	headerMagic   uint32 = 0x46546c67 // "glTF"
	headerVersion uint32 = 2

	chunkTypeJSON uint32 = 0x4e4f534a // "JSON"
	chunkTypeBIN  uint32 = 0x004e4942 // "BIN\0"

	headerSize      = 12
	chunkHeaderSize = 8
)

// EncodeGLB serializes the scene description and wraps it together with the
// packed binary payload into a GLB blob: a 12-byte file header followed by a
// JSON chunk and a BIN chunk, each preceded by an 8-byte chunk header. The
// JSON chunk is padded with ASCII spaces and the BIN chunk with zero bytes
// to 4-byte boundaries; padding is invisible to every accessor and view.
func EncodeGLB(doc *Document, bin []byte) ([]byte, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding scene description: %w", err)
	}
	for len(jsonBytes)%4 != 0 {
		jsonBytes = append(jsonBytes, 0x20)
	}

	paddedBinLen := len(bin)
	for paddedBinLen%4 != 0 {
		paddedBinLen++
	}

	total := headerSize +
		chunkHeaderSize + len(jsonBytes) +
		chunkHeaderSize + paddedBinLen

	var out bytes.Buffer
	out.Grow(total)

	header := [3]uint32{headerMagic, headerVersion, uint32(total)}
	if err := binary.Write(&out, binary.LittleEndian, header[:]); err != nil {
		return nil, err
	}

	jsonChunk := [2]uint32{uint32(len(jsonBytes)), chunkTypeJSON}
	if err := binary.Write(&out, binary.LittleEndian, jsonChunk[:]); err != nil {
		return nil, err
	}
	out.Write(jsonBytes)

	binChunk := [2]uint32{uint32(paddedBinLen), chunkTypeBIN}
	if err := binary.Write(&out, binary.LittleEndian, binChunk[:]); err != nil {
		return nil, err
	}
	out.Write(bin)
	for i := len(bin); i < paddedBinLen; i++ {
		out.WriteByte(0x00)
	}

	return out.Bytes(), nil
}
