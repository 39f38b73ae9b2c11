package commands

import (
	"fmt"

	"github.com/vfig/glbdiff/internal/output"
	"github.com/vfig/glbdiff/internal/storage"
)

// RunTextconv implements the content-dump mode used as a git textconv
// filter: the canonical JSON text followed by one content-digest line per
// binary chunk, so payload changes still show up in a textual diff.
func RunTextconv(out *output.Writer, path string) error {
	container, err := loadContainer(path)
	if err != nil {
		return err
	}

	if err := out.WriteString(container.Canonical + "\n"); err != nil {
		return err
	}

	if container.Payload != nil {
		line := fmt.Sprintf("Binary chunk: %s %s\n", storage.HashAlgorithm, storage.Hash(container.Payload))
		if err := out.WriteString(line); err != nil {
			return err
		}
	}

	for _, chunk := range container.Other {
		line := fmt.Sprintf("Extra chunk 0x%08X: %s %s\n", chunk.Tag, storage.HashAlgorithm, storage.Hash(chunk.Data))
		if err := out.WriteString(line); err != nil {
			return err
		}
	}

	return nil
}
