package labels

// Filter returns the candidates at which a label box of width w and height h neither touches an obstacle nor covers an occupied point. The candidates keep their order and the result never holds a point that is not in cands.
func Filter(cands []Point, w, h float64, occ *Occupancy, obstacles []Rect) []Point {
	valid := make([]Point, 0, len(cands))
	for _, c := range cands {
		blocked := false
		for _, obstacle := range obstacles {
			// inflate by the label's half extent so that a center outside means no overlap
			if obstacle.Inflate(w, h).ContainsPoint(c) {
				blocked = true
				break
			}
		}
		if !blocked {
			valid = append(valid, c)
		}
	}

	hit := occ.IntersectsAny(valid, w/2.0, h/2.0)
	n := 0
	for i, c := range valid {
		if !hit[i] {
			valid[n] = c
			n++
		}
	}
	return valid[:n]
}
