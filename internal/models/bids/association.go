package bids

// FindForProject returns the first inserted bid for the project.
func FindForProject(projectId int, bids []Bid) (Bid, bool) {
	for _, b := range bids {
		if b.ProjectId == projectId {
			return b, true
		}
	}
	return Bid{}, false
}

// GroupByStatus always returns all three buckets, each in insertion order.
func GroupByStatus(bids []Bid) map[Status][]Bid {
	groups := make(map[Status][]Bid, len(Statuses))
	for _, s := range Statuses {
		groups[s] = make([]Bid, 0)
	}
	for _, b := range bids {
		groups[b.Status] = append(groups[b.Status], b)
	}
	return groups
}
