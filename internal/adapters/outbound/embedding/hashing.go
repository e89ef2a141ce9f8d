package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultHashingModelName identifies the local hashing model.
const DefaultHashingModelName = "hash-ngram-v1"

// HashingModel is a deterministic local embedding model. Every whitespace
// token contributes its character bigrams and trigrams, hashed into a fixed
// number of signed buckets.
type HashingModel struct {
	name      string
	dimension int
}

// NewHashingModel creates a HashingModel producing vectors of the given dimension.
func NewHashingModel(name string, dimension int) HashingModel {
	return HashingModel{name: name, dimension: dimension}
}

// Name returns the model identifier.
func (m HashingModel) Name() string {
	return m.name
}

// Embed returns one unit-length vector per text.
func (m HashingModel) Embed(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = m.vector(text)
	}
	return out, nil
}

func (m HashingModel) vector(text string) []float64 {
	v := make([]float64, m.dimension)
	features := Features(text)
	if len(features) == 0 {
		features = []string{strings.TrimSpace(text)}
	}
	for _, f := range features {
		h := fnv.New32a()
		h.Write([]byte(f)) //nolint:errcheck
		sum := h.Sum32()
		sign := 1.0
		if (sum>>31)&1 == 1 {
			sign = -1.0
		}
		v[int(sum%uint32(m.dimension))] += sign
	}

	var norm2 float64
	for _, x := range v {
		norm2 += x * x
	}
	if norm2 == 0 {
		return v
	}
	n := math.Sqrt(norm2)
	for i := range v {
		v[i] /= n
	}
	return v
}

// Features returns the character n-grams hashed for text.
func Features(text string) []string {
	text = norm.NFC.String(text)

	var out []string
	for _, token := range strings.Fields(text) {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, token)
		if cleaned == "" {
			continue
		}
		runes := []rune("<" + cleaned + ">")
		for _, n := range []int{2, 3} {
			for i := 0; i+n <= len(runes); i++ {
				out = append(out, string(runes[i:i+n]))
			}
		}
	}
	return out
}
