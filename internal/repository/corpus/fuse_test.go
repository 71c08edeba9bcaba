package corpus

import "testing"

func TestFuseWeighted_DocumentInBothLegsRanksFirst(t *testing.T) {
	knn := []hit{
		{key: "both", score: 0.9},
		{key: "knn-only", score: 0.8},
	}
	bm25 := []hit{
		{key: "both", score: 12.0},
		{key: "bm25-only", score: 10.0},
	}

	fused := fuseWeighted(knn, bm25, 0.5, 10)

	if len(fused) != 3 {
		t.Fatalf("got %d hits, want 3", len(fused))
	}
	if fused[0].key != "both" {
		t.Errorf("top hit: got %s, want both", fused[0].key)
	}
}

func TestFuseWeighted_AlphaOneIsFullySemantic(t *testing.T) {
	knn := []hit{{key: "semantic"}}
	bm25 := []hit{{key: "lexical"}}

	fused := fuseWeighted(knn, bm25, 1.0, 10)

	if fused[0].key != "semantic" {
		t.Errorf("top hit: got %s, want semantic", fused[0].key)
	}
	// The lexical-only doc scores zero but is still present.
	if fused[1].key != "lexical" || fused[1].score != 0 {
		t.Errorf("lexical hit: got %s score %v", fused[1].key, fused[1].score)
	}
}

func TestFuseWeighted_AlphaZeroIsFullyLexical(t *testing.T) {
	knn := []hit{{key: "semantic"}}
	bm25 := []hit{{key: "lexical"}}

	fused := fuseWeighted(knn, bm25, 0.0, 10)

	if fused[0].key != "lexical" {
		t.Errorf("top hit: got %s, want lexical", fused[0].key)
	}
}

func TestFuseWeighted_TruncatesToTopK(t *testing.T) {
	var knn []hit
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		knn = append(knn, hit{key: k})
	}

	fused := fuseWeighted(knn, nil, 0.5, 2)

	if len(fused) != 2 {
		t.Errorf("got %d hits, want 2", len(fused))
	}
}

func TestFuseWeighted_KeepsKNNFieldsOnCollision(t *testing.T) {
	knn := []hit{{key: "doc", fields: map[string]string{"title": "from-knn"}}}
	bm25 := []hit{{key: "doc", fields: map[string]string{"title": "from-bm25"}}}

	fused := fuseWeighted(knn, bm25, 0.5, 10)

	if len(fused) != 1 {
		t.Fatalf("got %d hits, want 1", len(fused))
	}
	if fused[0].fields["title"] != "from-knn" {
		t.Errorf("fields: got %v, want knn entry's fields", fused[0].fields)
	}
}

func TestFuseWeighted_TiedScoresOrderDeterministically(t *testing.T) {
	// Same rank in each leg at alpha 0.5 gives identical scores; the KNN
	// hit must come first, every time.
	knn := []hit{{key: "semantic-1"}, {key: "semantic-2"}}
	bm25 := []hit{{key: "lexical-1"}, {key: "lexical-2"}}

	want := []string{"semantic-1", "lexical-1", "semantic-2", "lexical-2"}
	for run := 0; run < 20; run++ {
		fused := fuseWeighted(knn, bm25, 0.5, 10)
		for i, key := range want {
			if fused[i].key != key {
				t.Fatalf("run %d position %d: got %s, want %s", run, i, fused[i].key, key)
			}
		}
	}
}

func TestFuseWeighted_EmptyLegs(t *testing.T) {
	if got := fuseWeighted(nil, nil, 0.5, 10); len(got) != 0 {
		t.Errorf("got %d hits from empty legs", len(got))
	}
}
