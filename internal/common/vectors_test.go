package common

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := map[string]struct {
		vectorA     []float64
		vectorB     []float64
		wantScore   float64
		wantSuccess bool
	}{
		"identical-vectors-score-one": {
			vectorA:     []float64{1, 2, 3},
			vectorB:     []float64{1, 2, 3},
			wantScore:   1,
			wantSuccess: true,
		},
		"orthogonal-vectors-score-zero": {
			vectorA:     []float64{1, 0},
			vectorB:     []float64{0, 1},
			wantScore:   0,
			wantSuccess: true,
		},
		"opposite-vectors-score-minus-one": {
			vectorA:     []float64{1, 2, 3},
			vectorB:     []float64{-1, -2, -3},
			wantScore:   -1,
			wantSuccess: true,
		},
		"scaled-vectors-score-one": {
			vectorA:     []float64{1, 2, 3},
			vectorB:     []float64{2, 4, 6},
			wantScore:   1,
			wantSuccess: true,
		},
		"partially-aligned-vectors": {
			vectorA:     []float64{1, 1, 0},
			vectorB:     []float64{1, 0, 1},
			wantScore:   0.5,
			wantSuccess: true,
		},
		"zero-vector-scores-zero": {
			vectorA:     []float64{0, 0},
			vectorB:     []float64{1, 1},
			wantScore:   0,
			wantSuccess: false,
		},
		"both-zero-vectors-score-zero": {
			vectorA:     []float64{0, 0, 0},
			vectorB:     []float64{0, 0, 0},
			wantScore:   0,
			wantSuccess: false,
		},
		"mismatched-lengths-score-zero": {
			vectorA:     []float64{1, 2},
			vectorB:     []float64{1, 2, 3},
			wantScore:   0,
			wantSuccess: false,
		},
		"empty-vectors-score-zero": {
			vectorA:     []float64{},
			vectorB:     []float64{},
			wantScore:   0,
			wantSuccess: false,
		},
		"nil-vector-scores-zero": {
			vectorA:     nil,
			vectorB:     []float64{1},
			wantScore:   0,
			wantSuccess: false,
		},
		"single-component-vectors": {
			vectorA:     []float64{5},
			vectorB:     []float64{3},
			wantScore:   1,
			wantSuccess: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			score, ok := CosineSimilarity(tt.vectorA, tt.vectorB)

			assert.Equal(t, tt.wantSuccess, ok)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
		})
	}
}

func TestCosineSimilarity_SymmetricAndBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for range 200 {
		n := 1 + r.IntN(16)
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range n {
			a[i] = r.Float64()*2 - 1
			b[i] = r.Float64()*2 - 1
		}

		ab, _ := CosineSimilarity(a, b)
		ba, _ := CosineSimilarity(b, a)

		assert.InDelta(t, ab, ba, 1e-12)
		assert.LessOrEqual(t, ab, 1+1e-9)
		assert.GreaterOrEqual(t, ab, -1-1e-9)
	}
}

func TestIsValidEmbedding(t *testing.T) {
	tests := map[string]struct {
		vector []float64
		want   bool
	}{
		"finite-values":  {vector: []float64{0.1, -0.2, 3}, want: true},
		"zero-vector":    {vector: []float64{0, 0}, want: true},
		"nil":            {vector: nil, want: false},
		"empty":          {vector: []float64{}, want: false},
		"contains-nan":   {vector: []float64{0.1, math.NaN()}, want: false},
		"contains-inf":   {vector: []float64{math.Inf(1), 0.1}, want: false},
		"contains-m-inf": {vector: []float64{0.1, math.Inf(-1)}, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmbedding(tt.vector))
		})
	}
}

func TestToFloat32(t *testing.T) {
	tests := map[string]struct {
		input   []float64
		maxDims int
		want    []float32
	}{
		"no-limit": {
			input: []float64{0.5, 1.5},
			want:  []float32{0.5, 1.5},
		},
		"truncated": {
			input:   []float64{1, 2, 3},
			maxDims: 2,
			want:    []float32{1, 2},
		},
		"limit-above-length": {
			input:   []float64{1},
			maxDims: 4,
			want:    []float32{1},
		},
		"empty": {
			input: nil,
			want:  []float32{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat32(tt.input, tt.maxDims))
		})
	}
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, []float64{0.5, -2}, ToFloat64([]float32{0.5, -2}))
	assert.Equal(t, []float64{}, ToFloat64(nil))
}
