package dto

import (
	"github.com/ACK1998/cafe-tamarind-sub001/internal/menuquery"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// MenuQuery is bound from the query string of GET /v1/menu.
type MenuQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Stock    string `form:"stock,default=all"     validate:"oneof=all in-stock out-of-stock"`
	SortBy   string `form:"sort_by"               validate:"omitempty,oneof=rating-high rating-low name price-low price-high"`
	Audience string `form:"audience,default=customer" validate:"oneof=customer employee"`
	Tier     string `form:"tier,default=standard" validate:"oneof=standard in-house"`
	Page     int    `form:"page,default=1"        validate:"min=1"`
	Limit    int    `form:"limit,default=20"      validate:"min=1,max=100"`
}

// MenuPageResponse is one page of the filtered catalog plus its category
// grouping. Items accumulate client-side via sequential pages; HasNext
// drives the load-more affordance.
type MenuPageResponse struct {
	Items         []model.MenuItem          `json:"items"`
	Groups        []menuquery.CategoryGroup `json:"groups"`
	Page          int                       `json:"page"`
	Limit         int                       `json:"limit"`
	TotalFiltered int                       `json:"total_filtered"`
	HasNext       bool                      `json:"has_next"`
}
