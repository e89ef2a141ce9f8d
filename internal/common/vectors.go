package common

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was successful.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// CosineOrFloor returns the cosine similarity of a and b, or -1 when either
// side has a zero norm or the dimensions disagree.
func CosineOrFloor(a, b []float64) float64 {
	score, ok := CosineSimilarity(a, b)
	if !ok {
		return -1
	}
	return score
}

// Norm returns the euclidean norm of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// ToFloat32 converts v for storage in float32 vector columns.
func ToFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

// ToFloat64 widens a float32 vector back to float64.
func ToFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// RoundTo rounds x to the given number of decimal places.
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
