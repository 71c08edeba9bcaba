package corpus

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

// hit is one parsed FT.SEARCH entry before fusion.
type hit struct {
	key    string
	score  float64
	fields map[string]string
}

// parseKNNReply parses a KNN reply.
// Shape: [total, key1, fields1, key2, fields2, ...] (2-stride).
func parseKNNReply(raw []rueidis.RedisMessage, keyPrefix string) []hit {
	if len(raw) == 0 {
		return nil
	}
	total, err := raw[0].AsInt64()
	if err != nil || total == 0 {
		return nil
	}

	hits := make([]hit, 0, total)
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}
		fieldMsgs, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		h := hit{
			key:    strings.TrimPrefix(key, keyPrefix),
			fields: parseFieldPairs(fieldMsgs),
		}
		if distStr, ok := h.fields["__vector_score"]; ok {
			if dist, err := strconv.ParseFloat(distStr, 64); err == nil {
				h.score = max(0, 1.0-dist) // cosine distance to similarity
			}
			delete(h.fields, "__vector_score")
		}
		hits = append(hits, h)
	}
	return hits
}

// parseBM25Reply parses a WITHSCORES reply.
// Shape: [total, key1, score1, fields1, ...] (3-stride).
func parseBM25Reply(raw []rueidis.RedisMessage, keyPrefix string) []hit {
	if len(raw) == 0 {
		return nil
	}
	total, err := raw[0].AsInt64()
	if err != nil || total == 0 {
		return nil
	}

	hits := make([]hit, 0, total)
	for i := 1; i+2 < len(raw); i += 3 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}
		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}
		fieldMsgs, err := raw[i+2].ToArray()
		if err != nil {
			continue
		}

		hits = append(hits, hit{
			key:    strings.TrimPrefix(key, keyPrefix),
			score:  score,
			fields: parseFieldPairs(fieldMsgs),
		})
	}
	return hits
}

func parseFieldPairs(msgs []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(msgs)/2)
	for i := 0; i+1 < len(msgs); i += 2 {
		name, err := msgs[i].ToString()
		if err != nil {
			continue
		}
		value, err := msgs[i+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// hitsToDocuments tags fused hits with their collection.
func hitsToDocuments(hits []hit, col domain.Collection) []domain.RetrievedDocument {
	docs := make([]domain.RetrievedDocument, 0, len(hits))
	for _, h := range hits {
		docs = append(docs, domain.RetrievedDocument{
			Key:        h.key,
			Collection: col,
			Properties: h.fields,
			Score:      h.score,
		})
	}
	return docs
}

// vectorToBytes serializes []float32 to the binary form FT.SEARCH expects.
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

// escapeQuery escapes query-syntax characters in user text.
var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

// tagEscaper escapes tag values used in pre-filters.
var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)
