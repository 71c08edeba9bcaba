package corpus

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

func TestVectorToBytes(t *testing.T) {
	vec := []float32{1.0, -0.5, 0.25}
	raw := vectorToBytes(vec)

	if len(raw) != len(vec)*4 {
		t.Fatalf("got %d bytes, want %d", len(raw), len(vec)*4)
	}
	for i, want := range vec {
		bits := binary.LittleEndian.Uint32([]byte(raw)[i*4:])
		if got := math.Float32frombits(bits); got != want {
			t.Errorf("element %d: got %v, want %v", i, got, want)
		}
	}
}

func TestEscapeQuery(t *testing.T) {
	got := escapeQuery(`tendon-healing (BPC) @8mg`)

	for _, fragment := range []string{`\-`, `\(`, `\)`, `\@`} {
		if !strings.Contains(got, fragment) {
			t.Errorf("escaped query %q missing %s", got, fragment)
		}
	}
}

func TestEntityFilter(t *testing.T) {
	if got := entityFilter(nil); got != "" {
		t.Errorf("empty entities: got %q, want empty", got)
	}

	got := entityFilter([]string{"BPC-157", "TB-500"})
	if !strings.HasPrefix(got, "@peptide:{") {
		t.Errorf("filter shape: got %q", got)
	}
	if !strings.Contains(got, "|") {
		t.Errorf("filter missing union: got %q", got)
	}
	if !strings.Contains(got, `\-`) {
		t.Errorf("tag values not escaped: got %q", got)
	}
}

func TestHitsToDocuments(t *testing.T) {
	hits := []hit{
		{key: "1", score: 0.7, fields: map[string]string{"title": "A"}},
		{key: "2", score: 0.3, fields: map[string]string{"title": "B"}},
	}

	docs := hitsToDocuments(hits, domain.CollectionReference)

	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0].Collection != domain.CollectionReference {
		t.Errorf("collection: got %s", docs[0].Collection)
	}
	if docs[0].Property("title") != "A" {
		t.Errorf("properties: got %v", docs[0].Properties)
	}
	if docs[1].Score != 0.3 {
		t.Errorf("score: got %v", docs[1].Score)
	}
}
