package domain

import "time"

// ProductCount is one entry of a top-products report.
type ProductCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Period is the date range a statistics query covered. Nil bounds mean
// unbounded on that side.
type Period struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

type TopProductsReport struct {
	Period      Period         `json:"period"`
	TopProducts []ProductCount `json:"top_products"`
}
