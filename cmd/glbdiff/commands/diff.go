package commands

import (
	"github.com/vfig/glbdiff/glb"
	"github.com/vfig/glbdiff/internal/output"
	"github.com/vfig/glbdiff/internal/storage"
)

// Fixed notices for the opaque chunk categories. Byte-level differences
// are never shown for these.
const (
	binaryDifferNotice = "Binary chunks differ.\n"
	extraDifferNotice  = "Extra chunks differ.\n"
)

// RunDiff implements the two-file comparison mode: the unified JSON diff
// followed by the fixed notices for the opaque categories.
func RunDiff(out *output.Writer, oldPath, newPath string) error {
	oldGLB, err := loadContainer(oldPath)
	if err != nil {
		return err
	}
	newGLB, err := loadContainer(newPath)
	if err != nil {
		return err
	}

	result, err := glb.Compare(oldGLB, newGLB)
	if err != nil {
		return err
	}

	if result.StructuredDiffer {
		if err := out.WriteString(result.StructuredDiff); err != nil {
			return err
		}
	}
	if result.PayloadDiffer {
		if err := out.WriteString(binaryDifferNotice); err != nil {
			return err
		}
	}
	if result.OtherDiffer {
		if err := out.WriteString(extraDifferNotice); err != nil {
			return err
		}
	}

	return nil
}

// loadContainer reads and parses one container file, using its path as
// the display label.
func loadContainer(path string) (*glb.Container, error) {
	buffer, err := storage.ReadContainer(path)
	if err != nil {
		return nil, err
	}
	return glb.Parse(buffer, path)
}
