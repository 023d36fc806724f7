package storage

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a set of run scores.
type Summary struct {
	Runs   int
	Best   int
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
}

// Summarize computes score statistics. An empty input yields a zero Summary.
func Summarize(entries []ScoreEntry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	scores := make([]float64, len(entries))
	best := entries[0].Score
	for i, e := range entries {
		scores[i] = float64(e.Score)
		if e.Score > best {
			best = e.Score
		}
	}
	// stat.Quantile requires sorted input.
	sort.Float64s(scores)

	sum := Summary{
		Runs:   len(scores),
		Best:   best,
		Median: stat.Quantile(0.5, stat.Empirical, scores, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, scores, nil),
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(scores, nil)
	if len(scores) == 1 {
		sum.StdDev = 0
	}
	return sum
}
