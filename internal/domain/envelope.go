package domain

// Source is a citation attached to an answer.
type Source struct {
	Title      string
	Citation   string
	URL        string
	SourceType string
}

// Metadata describes how an answer was produced.
type Metadata struct {
	Model         string
	ContextChunks int
	ElapsedMS     int64
	Blocked       bool
}

// Envelope is the complete structured output of one pipeline run.
type Envelope struct {
	Answer         string
	Sources        []Source
	Disclaimers    []string
	FollowUps      []string
	Classification Classification
	Metadata       Metadata
}
