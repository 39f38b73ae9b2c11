package glb

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

// Comparison reports, independently for each chunk category, whether two
// containers differ. The structured category additionally carries a
// unified line diff of the two canonical texts.
type Comparison struct {
	StructuredDiffer bool
	PayloadDiffer    bool
	OtherDiffer      bool

	// StructuredDiff is the unified diff of the canonical texts, with the
	// containers' labels as file headers. Empty when the structured
	// category is equal.
	StructuredDiff string
}

// HasDifferences reports whether any category differs.
func (c *Comparison) HasDifferences() bool {
	return c.StructuredDiffer || c.PayloadDiffer || c.OtherDiffer
}

// Compare determines equality of the structured, payload and other-chunk
// categories of two parsed containers. Both containers are left untouched.
func Compare(a, b *Container) (*Comparison, error) {
	result := &Comparison{}

	if a.Canonical != b.Canonical {
		result.StructuredDiffer = true
		diff, err := unifiedDiff(a.Canonical, b.Canonical, a.Label, b.Label)
		if err != nil {
			return nil, fmt.Errorf("failed to diff JSON chunks: %w", err)
		}
		result.StructuredDiff = diff
	}

	result.PayloadDiffer = !payloadEqual(a.Payload, b.Payload)
	result.OtherDiffer = !otherEqual(a.Other, b.Other)

	return result, nil
}

// payloadEqual treats an absent payload (nil) as distinct from a
// present-but-empty one.
func payloadEqual(a, b []byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return bytes.Equal(a, b)
}

// otherEqual compares the ordered (tag, data) sequences exactly; a
// reordering of otherwise identical chunks is a difference.
func otherEqual(a, b []Chunk) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Tag != b[i].Tag || !bytes.Equal(a[i].Data, b[i].Data) {
			return false
		}
	}
	return true
}

func unifiedDiff(a, b, labelA, labelB string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: labelA,
		ToFile:   labelB,
		Context:  diffContext,
	})
}
