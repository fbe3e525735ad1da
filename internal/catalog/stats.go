package catalog

// DuplicateYear describes a year shared by several books. Winner is the
// book a lookup returns for that year.
type DuplicateYear struct {
	Year   int    `json:"year"`
	Count  int    `json:"count"`
	Winner string `json:"winner"`
}

// Stats summarizes a catalog.
type Stats struct {
	Total      int             `json:"total"`
	Dated      int             `json:"dated"`
	Undated    int             `json:"undated"`
	MinYear    int             `json:"min_year"`
	MaxYear    int             `json:"max_year"`
	Duplicates []DuplicateYear `json:"duplicates,omitempty"`
}

// Stats computes counts and the years shared by more than one book.
// Duplicates are listed in the order their year first appears.
func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.books)}

	counts := map[int]int{}
	var order []int
	first := map[int]string{}

	for _, b := range c.books {
		if !b.Dated {
			s.Undated++
			continue
		}
		if s.Dated == 0 || b.Date < s.MinYear {
			s.MinYear = b.Date
		}
		if s.Dated == 0 || b.Date > s.MaxYear {
			s.MaxYear = b.Date
		}
		s.Dated++

		if counts[b.Date] == 0 {
			order = append(order, b.Date)
			first[b.Date] = b.Title
		}
		counts[b.Date]++
	}

	for _, year := range order {
		if counts[year] > 1 {
			s.Duplicates = append(s.Duplicates, DuplicateYear{
				Year:   year,
				Count:  counts[year],
				Winner: first[year],
			})
		}
	}
	return s
}
