package corpus

import "sort"

// rrfK is the reciprocal rank fusion constant (Cormack et al. 2009).
const rrfK = 60

// fuseWeighted merges the KNN and BM25 legs via reciprocal rank fusion with
// the lexical/semantic blend applied as leg weights:
//
//	score(d) = alpha/(k + knnRank(d)) + (1-alpha)/(k + bm25Rank(d))
//
// alpha=1 is fully semantic, alpha=0 fully lexical. A document appearing in
// both legs keeps the KNN entry's fields. Output order is deterministic:
// equal scores tie-break by leg (KNN first), then by rank within the leg.
func fuseWeighted(knn, bm25 []hit, alpha float64, topK int) []hit {
	scores := make(map[string]float64, len(knn)+len(bm25))
	for rank, h := range knn {
		scores[h.key] = alpha / float64(rrfK+rank+1)
	}
	for rank, h := range bm25 {
		scores[h.key] += (1 - alpha) / float64(rrfK+rank+1)
	}

	seen := make(map[string]struct{}, len(scores))
	fused := make([]hit, 0, len(scores))
	for _, h := range append(knn[:len(knn):len(knn)], bm25...) {
		if _, ok := seen[h.key]; ok {
			continue
		}
		seen[h.key] = struct{}{}
		h.score = scores[h.key]
		fused = append(fused, h)
	}

	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].score > fused[j].score
	})

	if len(fused) > topK {
		fused = fused[:topK]
	}
	return fused
}
