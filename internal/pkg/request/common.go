package request

// ListParams are the shared pagination query parameters.
type ListParams struct {
	Page     int `form:"page" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

// Normalize applies the defaults for unset pagination values.
func (p ListParams) Normalize() (page, pageSize int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	pageSize = p.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
