package domain

// Collection distinguishes the two corpora the hybrid index serves.
type Collection string

const (
	// CollectionReference holds research and reference material chunks.
	CollectionReference Collection = "reference"
	// CollectionOutcomes holds aggregated user-outcome narratives.
	CollectionOutcomes Collection = "outcomes"
)

// RetrievedDocument is one hybrid-search hit. It lives only for the duration
// of the request that retrieved it.
type RetrievedDocument struct {
	Key        string
	Collection Collection
	Properties map[string]string
	Score      float64
}

// Property returns a named property or the empty string.
func (d RetrievedDocument) Property(name string) string {
	return d.Properties[name]
}
