package classifier

import (
	"math"
	"sort"
)

type feature struct {
	index int
	value float64
}

// vectorize builds an L2-normalized TF-IDF vector from raw term counts.
// Terms outside the vocabulary are ignored.
func vectorize(tokens []string, index map[string]int, idf []float64) []feature {
	counts := make(map[int]float64)
	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	features := make([]feature, 0, len(counts))
	var norm float64
	for i, tf := range counts {
		v := tf * idf[i]
		features = append(features, feature{index: i, value: v})
		norm += v * v
	}
	sort.Slice(features, func(a, b int) bool { return features[a].index < features[b].index })

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range features {
			features[i].value /= norm
		}
	}
	return features
}

// smoothIDF matches the smoothed idf used by common TF-IDF vectorizers.
func smoothIDF(docs, df int) float64 {
	return math.Log(float64(1+docs)/float64(1+df)) + 1
}
