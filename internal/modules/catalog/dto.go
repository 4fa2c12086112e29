package catalog

// SearchQuery carries the optional list filters. Price is one of the
// fixed brackets "0-20", "20-40", "40-60"; empty means no bracket.
type SearchQuery struct {
	Search  string `form:"search"`
	Service string `form:"service"`
	Price   string `form:"price"`
}
