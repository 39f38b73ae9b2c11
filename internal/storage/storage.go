// Package storage supplies complete in-memory byte buffers to the GLB
// core. File reads happen here, before any parsing begins; the core never
// performs I/O.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/valyala/gozstd"
)

// HashAlgorithm names the digest used for content-digest lines.
const HashAlgorithm = "sha256"

// zstdMagic is the little-endian zstd frame magic number.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// ReadContainer reads a container file completely into memory. Files
// carrying a zstd frame (e.g. .glb.zst assets stored compressed in large
// repositories) are transparently decompressed, so callers always see the
// plain container bytes.
func ReadContainer(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if isZstd(data) {
		decompressed, err := gozstd.Decompress(nil, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		return decompressed, nil
	}

	return data, nil
}

func isZstd(data []byte) bool {
	return len(data) >= len(zstdMagic) &&
		data[0] == zstdMagic[0] && data[1] == zstdMagic[1] &&
		data[2] == zstdMagic[2] && data[3] == zstdMagic[3]
}

// Hash returns the hex-encoded SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
