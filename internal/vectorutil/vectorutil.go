// Package vectorutil builds genre membership vectors and scores them
// with cosine similarity.
package vectorutil

import (
	"errors"
	"math"
	"sort"
)

// ErrDimensionMismatch reports vectors of different lengths being
// compared. BuildVectors guarantees equal lengths, so hitting this from
// the comparison path is a programming error, not a user condition.
var ErrDimensionMismatch = errors.New("vectors must have the same length")

// BuildVectors materializes the union of both genre sets into a sorted
// basis and returns the two binary membership vectors over it. Position
// i of each vector refers to basis[i]. The basis is sorted so repeated
// comparisons of the same two users serialize identically.
func BuildVectors(genres1, genres2 map[string]struct{}) (basis []string, vector1, vector2 []int) {
	basis = make([]string, 0, len(genres1)+len(genres2))
	for genre := range genres1 {
		basis = append(basis, genre)
	}
	for genre := range genres2 {
		if _, seen := genres1[genre]; !seen {
			basis = append(basis, genre)
		}
	}
	sort.Strings(basis)

	vector1 = make([]int, len(basis))
	vector2 = make([]int, len(basis))
	for i, genre := range basis {
		if _, ok := genres1[genre]; ok {
			vector1[i] = 1
		}
		if _, ok := genres2[genre]; ok {
			vector2[i] = 1
		}
	}
	return basis, vector1, vector2
}

// CosineSimilarity computes dot(v1, v2) / (|v1| * |v2|). For the binary
// vectors used here the result is within [0, 1]. Either vector having a
// zero norm yields exactly 0 rather than a division fault.
func CosineSimilarity(vector1, vector2 []int) (float64, error) {
	if len(vector1) != len(vector2) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range vector1 {
		a := float64(vector1[i])
		b := float64(vector2[i])
		dot += a * b
		normA += a * a
		normB += b * b
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
