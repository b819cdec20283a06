package labels

import "math"

// Scorer ranks candidate label positions. Repulsion pushes labels away from the bulk of the data and attraction pulls them towards their own anchor.
type Scorer struct {
	Repulsion  *Gaussian
	Attraction *Gaussian
}

// Scores returns repulsion minus attraction for each candidate, where the repulsion is scaled to have a maximum of one over the candidates.
func (s Scorer) Scores(cands []Point) []float64 {
	repulsion := make([]float64, len(cands))
	maxRepulsion := 0.0
	for i, c := range cands {
		repulsion[i] = s.Repulsion.Density(c)
		maxRepulsion = math.Max(maxRepulsion, repulsion[i])
	}

	scores := make([]float64, len(cands))
	for i, c := range cands {
		r := repulsion[i]
		if 0.0 < maxRepulsion {
			r /= maxRepulsion
		}
		scores[i] = r - s.Attraction.Density(c)
	}
	return scores
}

// Best returns the candidate with the lowest score, the first one wins ties. It returns false when there are no candidates.
func (s Scorer) Best(cands []Point) (Point, bool) {
	if len(cands) == 0 {
		return Point{}, false
	}
	scores := s.Scores(cands)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	return cands[best], true
}
