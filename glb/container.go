// Package glb parses GLB (binary glTF 2.0) containers and compares their
// contents: the embedded JSON document is canonicalized for line diffing,
// while binary payload is treated as an opaque blob that is either
// identical or differs.
package glb

import (
	"encoding/binary"
)

const (
	// Magic is the fixed GLB magic number ("glTF", little-endian).
	Magic = 0x46546C67

	// Version is the one supported container revision.
	Version = 2

	// ChunkJSON tags the structured-data chunk ("JSON").
	ChunkJSON = 0x4E4F534A

	// ChunkBIN tags the binary-payload chunk ("BIN\0").
	ChunkBIN = 0x004E4942

	headerSize      = 12
	chunkHeaderSize = 8
)

// Chunk is one tagged, length-prefixed span of bytes within a container.
type Chunk struct {
	Tag  uint32
	Data []byte
}

// Container is the parsed in-memory form of one GLB file. It is built once
// by Parse and read-only thereafter.
type Container struct {
	// Label is a display name, typically the originating file path. It is
	// used only for diff header lines.
	Label string

	// Structured holds the raw bytes of the JSON chunk, nil when absent.
	Structured []byte

	// Payload holds the raw bytes of the BIN chunk, nil when absent. A
	// present-but-empty payload is a non-nil zero-length slice and is not
	// the same as an absent one.
	Payload []byte

	// Other holds all unrecognized chunks in file order. Duplicate tags
	// are allowed here.
	Other []Chunk

	// Canonical is the deterministic text form of the JSON chunk, empty
	// when no JSON chunk is present.
	Canonical string
}

// Parse decodes a complete GLB byte buffer into a Container. The label is
// carried through for diff headers and error messages. All failures are
// *FormatError; a Container is never partially returned.
func Parse(buffer []byte, label string) (*Container, error) {
	if len(buffer) < headerSize {
		return nil, formatErrf(label, "truncated header: %d bytes", len(buffer))
	}

	magic := binary.LittleEndian.Uint32(buffer[0:4])
	version := binary.LittleEndian.Uint32(buffer[4:8])
	total := binary.LittleEndian.Uint32(buffer[8:12])

	if magic != Magic {
		return nil, formatErrf(label, "not a GLB file (or invalid magic)")
	}
	if version != Version {
		return nil, formatErrf(label, "only GLB version %d supported (got %d)", Version, version)
	}

	c := &Container{Label: label}

	// The declared total length bounds the chunk scan; bytes past it are
	// ignored, but no read may cross it or the end of the buffer.
	offset := uint64(headerSize)
	end := uint64(total)

	for offset < end {
		if offset+chunkHeaderSize > end || offset+chunkHeaderSize > uint64(len(buffer)) {
			return nil, formatErrf(label, "truncated chunk header at offset %d", offset)
		}
		chunkLen := uint64(binary.LittleEndian.Uint32(buffer[offset : offset+4]))
		chunkTag := binary.LittleEndian.Uint32(buffer[offset+4 : offset+8])
		offset += chunkHeaderSize

		if offset+chunkLen > end || offset+chunkLen > uint64(len(buffer)) {
			return nil, formatErrf(label, "chunk 0x%08X overruns container: %d bytes at offset %d", chunkTag, chunkLen, offset)
		}
		data := make([]byte, chunkLen)
		copy(data, buffer[offset:offset+chunkLen])
		offset += chunkLen

		switch chunkTag {
		case ChunkJSON:
			if c.Structured != nil {
				return nil, formatErrf(label, "duplicate JSON chunk")
			}
			c.Structured = data
		case ChunkBIN:
			if c.Payload != nil {
				return nil, formatErrf(label, "duplicate BIN chunk")
			}
			c.Payload = data
		default:
			c.Other = append(c.Other, Chunk{Tag: chunkTag, Data: data})
		}
	}

	if c.Structured != nil {
		canonical, err := Canonicalize(c.Structured)
		if err != nil {
			if fe, ok := err.(*FormatError); ok {
				fe.Label = label
				return nil, fe
			}
			return nil, &FormatError{Label: label, Msg: "invalid JSON chunk", Err: err}
		}
		c.Canonical = canonical
	}

	return c, nil
}
