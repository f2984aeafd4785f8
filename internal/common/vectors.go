package common

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors.
// The score is 0 whenever it cannot be computed (empty input, length mismatch
// or a zero-magnitude vector) and the boolean reports whether it was computable.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// IsValidEmbedding reports whether v is a non-empty vector of finite numbers.
func IsValidEmbedding(v []float64) bool {
	if len(v) == 0 {
		return false
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// ToFloat32 converts v to float32, keeping at most maxDims components when maxDims > 0.
func ToFloat32(v []float64, maxDims int) []float32 {
	if maxDims > 0 && len(v) > maxDims {
		v = v[:maxDims]
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

// ToFloat64 widens a float32 vector.
func ToFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
