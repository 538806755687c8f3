package bidding

import (
	"fmt"

	"freelance_bidding/internal/catalog"
	"freelance_bidding/internal/models/bids"
	"freelance_bidding/internal/models/project"

	"github.com/dustin/go-humanize"
)

type ProjectListing struct {
	Project project.Project `json:"project"`
	Bid     *bids.Bid       `json:"bid,omitempty"`
}

type BoardEntry struct {
	Bid         bids.Bid `json:"bid"`
	ProjectName string   `json:"projectName"`
	Amount      string   `json:"amount"`
	Timeline    string   `json:"timeline"`
	Date        string   `json:"date"`
}

type BoardColumn struct {
	Status  bids.Status  `json:"status"`
	Count   int          `json:"count"`
	Entries []BoardEntry `json:"entries"`
}

type Board struct {
	Total   int           `json:"total"`
	Columns []BoardColumn `json:"columns"`
}

// Listing is the bidding screen: the filtered catalog with each project's bid, if any.
func (s *Service) Listing(search, skill string) []ProjectListing {
	all := s.repo.ListAll()
	filtered := catalog.Filter(s.projects, search, skill)

	result := make([]ProjectListing, 0, len(filtered))
	for _, p := range filtered {
		item := ProjectListing{Project: p}
		if b, ok := bids.FindForProject(p.Id, all); ok {
			item.Bid = &b
		}
		result = append(result, item)
	}
	return result
}

// StatusBoard is the status screen. Bids for projects missing from the
// catalog are counted but not listed.
func (s *Service) StatusBoard() Board {
	all := s.repo.ListAll()
	groups := bids.GroupByStatus(all)

	board := Board{Total: len(all), Columns: make([]BoardColumn, 0, len(bids.Statuses))}
	for _, status := range bids.Statuses {
		col := BoardColumn{Status: status, Count: len(groups[status]), Entries: make([]BoardEntry, 0)}
		for _, b := range groups[status] {
			p, ok := project.FindById(s.projects, b.ProjectId)
			if !ok {
				continue
			}
			col.Entries = append(col.Entries, BoardEntry{
				Bid:         b,
				ProjectName: p.Name,
				Amount:      FormatAmount(b.Amount),
				Timeline:    fmt.Sprintf("%d days", b.Timeline),
				Date:        b.CreatedAt.Format("2006-01-02"),
			})
		}
		board.Columns = append(board.Columns, col)
	}
	return board
}

func FormatAmount(amount float64) string {
	return "₹" + humanize.Commaf(amount)
}
