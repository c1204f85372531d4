package models

import "github.com/shopspring/decimal"

// Stats is the aggregate the admin dashboard loads in one call.
type Stats struct {
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int             `json:"totalOrders"`
	Stock       int             `json:"stock"`
	Orders      []Order         `json:"orders"`
}
