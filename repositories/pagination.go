package repositories

import "gorm.io/gorm"

// Pagination carries one page of results plus the counters every paginated
// endpoint exposes.
type Pagination struct {
	Items       interface{} `json:"items"`
	Total       int64       `json:"total"`
	PerPage     int         `json:"per_page"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
}

// Paginate counts the filtered query, then loads one page into out (a pointer
// to a slice). Pages are 1-based; page values below 1 are treated as page 1.
func Paginate(query *gorm.DB, page, perPage int, out interface{}) (*Pagination, error) {
	if page < 1 {
		page = 1
	}

	// Count on a fresh session so the select/order clauses of the page query
	// stay untouched.
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(out).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &Pagination{
		Items:       out,
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    lastPage,
	}, nil
}
