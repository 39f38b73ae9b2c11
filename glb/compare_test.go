package glb_test

import (
	"strings"
	"testing"

	"github.com/vfig/glbdiff/glb"
)

func mustCompare(t *testing.T, a, b *glb.Container) *glb.Comparison {
	t.Helper()
	result, err := glb.Compare(a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	return result
}

func TestCompare(t *testing.T) {
	t.Run("Reflexive", func(t *testing.T) {
		buffer := buildContainer(
			rawChunk{glb.ChunkJSON, []byte(`{"a":1}`)},
			rawChunk{glb.ChunkBIN, []byte{1, 2, 3}},
			rawChunk{0xAAAA0001, []byte("x")},
		)
		a := mustParse(t, buffer, "a.glb")
		b := mustParse(t, buffer, "b.glb")

		result := mustCompare(t, a, b)

		if result.HasDifferences() {
			t.Errorf("identical bytes must compare equal: %+v", result)
		}
	})

	t.Run("WhitespaceOnlyJSONChangeIsEqual", func(t *testing.T) {
		a := mustParse(t, buildContainer(rawChunk{glb.ChunkJSON, []byte(`{"a":1}`)}), "a.glb")
		b := mustParse(t, buildContainer(rawChunk{glb.ChunkJSON, []byte("{ \"a\" :\n1 }")}), "b.glb")

		result := mustCompare(t, a, b)

		if result.StructuredDiffer {
			t.Errorf("raw byte layout must not affect structured equality:\n%s", result.StructuredDiff)
		}
	})

	t.Run("StructuredValueChange", func(t *testing.T) {
		a := mustParse(t, buildContainer(rawChunk{glb.ChunkJSON, []byte(`{"a":1}`)}), "a.glb")
		b := mustParse(t, buildContainer(rawChunk{glb.ChunkJSON, []byte(`{"a":2}`)}), "b.glb")

		result := mustCompare(t, a, b)

		if !result.StructuredDiffer {
			t.Fatal("expected structured difference")
		}
		if result.PayloadDiffer || result.OtherDiffer {
			t.Errorf("only the structured category should differ: %+v", result)
		}

		diff := result.StructuredDiff
		if !strings.Contains(diff, "--- a.glb\n") || !strings.Contains(diff, "+++ b.glb\n") {
			t.Errorf("diff headers should carry the source labels:\n%s", diff)
		}
		if !strings.Contains(diff, "-    \"a\": 1\n") {
			t.Errorf("missing removed line:\n%s", diff)
		}
		if !strings.Contains(diff, "+    \"a\": 2\n") {
			t.Errorf("missing added line:\n%s", diff)
		}
		if !strings.Contains(diff, " {\n") || !strings.Contains(diff, " }\n") {
			t.Errorf("unchanged lines should appear as context:\n%s", diff)
		}
	})

	t.Run("PayloadSingleByteChange", func(t *testing.T) {
		json := rawChunk{glb.ChunkJSON, []byte(`{"a":1}`)}
		a := mustParse(t, buildContainer(json, rawChunk{glb.ChunkBIN, []byte{1, 2, 3, 4}}), "a.glb")
		b := mustParse(t, buildContainer(json, rawChunk{glb.ChunkBIN, []byte{1, 2, 9, 4}}), "b.glb")

		result := mustCompare(t, a, b)

		if !result.PayloadDiffer {
			t.Fatal("expected payload difference")
		}
		if result.StructuredDiffer || result.OtherDiffer {
			t.Errorf("only the payload category should differ: %+v", result)
		}
		// Opaque category: no byte-level detail leaks anywhere.
		if result.StructuredDiff != "" {
			t.Errorf("payload differences must not produce diff text: %q", result.StructuredDiff)
		}
	})

	t.Run("PayloadAbsentVsEmpty", func(t *testing.T) {
		json := rawChunk{glb.ChunkJSON, []byte(`{"a":1}`)}
		a := mustParse(t, buildContainer(json), "a.glb")
		b := mustParse(t, buildContainer(json, rawChunk{glb.ChunkBIN, []byte{}}), "b.glb")

		result := mustCompare(t, a, b)

		if !result.PayloadDiffer {
			t.Error("an absent payload and an empty payload chunk must differ")
		}
	})

	t.Run("OtherChunkOrderMatters", func(t *testing.T) {
		json := rawChunk{glb.ChunkJSON, []byte(`{"a":1}`)}
		one := rawChunk{0xAAAA0001, []byte("one")}
		two := rawChunk{0xAAAA0002, []byte("two")}

		a := mustParse(t, buildContainer(json, one, two), "a.glb")
		b := mustParse(t, buildContainer(json, two, one), "b.glb")

		result := mustCompare(t, a, b)

		if !result.OtherDiffer {
			t.Error("reordered other chunks must report a difference")
		}
		if result.StructuredDiffer || result.PayloadDiffer {
			t.Errorf("only the other-chunk category should differ: %+v", result)
		}
	})

	t.Run("ExtraUnrecognizedChunk", func(t *testing.T) {
		json := rawChunk{glb.ChunkJSON, []byte(`{"a":1}`)}
		a := mustParse(t, buildContainer(json), "a.glb")
		b := mustParse(t, buildContainer(json, rawChunk{0xDEADBEEF, []byte("spare")}), "b.glb")

		result := mustCompare(t, a, b)

		if !result.OtherDiffer {
			t.Fatal("expected other-chunk difference")
		}
		if result.StructuredDiffer {
			t.Errorf("structured category should be equal:\n%s", result.StructuredDiff)
		}
		if result.PayloadDiffer {
			t.Error("payload category should be equal")
		}
	})

	t.Run("NoJSONOnEitherSide", func(t *testing.T) {
		a := mustParse(t, buildContainer(), "a.glb")
		b := mustParse(t, buildContainer(), "b.glb")

		result := mustCompare(t, a, b)

		if result.HasDifferences() {
			t.Errorf("two chunkless containers must compare equal: %+v", result)
		}
	})
}
