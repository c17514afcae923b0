package domain

type OrderSearchCriteria struct {
	Keyword       string
	Start         int
	Count         int
	ResponseGroup ResponseGroup
}

type OrderSearchResult struct {
	TotalCount int              `json:"totalCount"`
	Results    []*CustomerOrder `json:"customerOrders"`
}
