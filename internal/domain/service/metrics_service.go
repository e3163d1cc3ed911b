package service

import "github.com/shopspring/decimal"

// OrderMetrics records business counters for the order flow.
type OrderMetrics interface {
	OrderCreated(total decimal.Decimal)
	OrderFailed(reason string)
	OrderStatusChanged(status string)
}
