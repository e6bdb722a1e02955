package queries

import (
	"context"
	"errors"
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGetSalesSummaryQueryIsNotConstructed = errors.New(
		"GetSalesSummaryQuery must be created via NewGetSalesSummaryQuery constructor",
	)
)

// GetSalesSummaryQuery aggregates delivered orders per restaurant inside an
// optional, possibly open-ended, creation window.
type GetSalesSummaryQuery struct {
	period order.TimeRange

	guard guard.ConstructorGuard
}

func NewGetSalesSummaryQuery(from, to *time.Time) (GetSalesSummaryQuery, error) {
	period := order.TimeRange{From: from, To: to}
	if err := period.Validate(); err != nil {
		return GetSalesSummaryQuery{}, err
	}
	return GetSalesSummaryQuery{period: period, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSalesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesSummaryQueryIsNotConstructed)
}

type SalesSummaryResponse struct {
	RestaurantID   kernel.UUID
	RestaurantName string
	OrdersCount    int64
	Revenue        kernel.Money
}

// GetSalesSummaryQueryHandler reads the orders and restaurants tables
// directly. Rows come back ordered by revenue, highest first.
//
// Example:
//
//	handler := NewGetSalesSummaryQueryHandler(db)
//	from := time.Now().AddDate(0, -1, 0)
//	query, _ := NewGetSalesSummaryQuery(&from, nil)
//
//	rows, err := handler.Handle(ctx, query)
//	for _, r := range rows {
//	    fmt.Printf("%s: %d orders, %s\n", r.RestaurantName, r.OrdersCount, r.Revenue)
//	}
type GetSalesSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetSalesSummaryQueryHandler(db *gorm.DB) GetSalesSummaryQueryHandler {
	return GetSalesSummaryQueryHandler{db: db}
}

func (h GetSalesSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSalesSummaryQuery,
) ([]SalesSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.restaurant_id, r.name AS restaurant_name, COUNT(*) AS orders_count, SUM(o.total) AS revenue").
		Joins("JOIN restaurants AS r ON r.id = o.restaurant_id").
		Where("o.status = ?", order.Delivered.String())

	if query.period.From != nil {
		tx = tx.Where("o.created_at >= ?", query.period.From.UTC())
	}
	if query.period.To != nil {
		tx = tx.Where("o.created_at <= ?", query.period.To.UTC())
	}

	rows, err := tx.
		Group("o.restaurant_id, r.name").
		Order("revenue DESC, r.name").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]SalesSummaryResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			row     SalesSummaryResponse
			revenue decimal.Decimal
		)

		if err = rows.Scan(&id, &row.RestaurantName, &row.OrdersCount, &revenue); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.RestaurantID = restaurantID
		row.Revenue = kernel.NewMoney(revenue)

		summary = append(summary, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
