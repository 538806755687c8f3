package profile

type Rating struct {
	Mean  float64 `json:"rating"`
	Count int     `json:"totalRatings"`
}

// Fold adds one vote to a running mean. The vote is not range checked here;
// callers validate 1..5 before folding.
func Fold(mean float64, count int, vote int) (float64, int) {
	newCount := count + 1
	return (mean*float64(count) + float64(vote)) / float64(newCount), newCount
}

func (r Rating) Add(vote int) Rating {
	mean, count := Fold(r.Mean, r.Count, vote)
	return Rating{Mean: mean, Count: count}
}
