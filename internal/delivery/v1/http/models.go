package http

import (
	"time"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/usecase"
)

// ProductResponse — позиция каталога в ответах API. Денежные поля
// дублируются: целые евроценты и отформатированная строка.
type ProductResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
}

func NewProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		PriceCents: p.Price,
		Price:      formatCents(p.Price),
	}
}

func NewProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *NewProductResponse(&products[i]))
	}
	return out
}

// WaiterResponse — официант в ответах API. PIN наружу не отдаётся.
type WaiterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewWaiterResponse(w *domain.Waiter) *WaiterResponse {
	return &WaiterResponse{
		ID:   w.ID,
		Name: w.Name,
	}
}

func NewWaiterListResponse(waiters []domain.Waiter) []WaiterResponse {
	out := make([]WaiterResponse, 0, len(waiters))
	for i := range waiters {
		out = append(out, *NewWaiterResponse(&waiters[i]))
	}
	return out
}

// OrderLineResponse — строка заказа или корзины.
type OrderLineResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	PriceCents     int64  `json:"price_cents"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
}

func newOrderLineResponses(lines []domain.OrderLine) []OrderLineResponse {
	out := make([]OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, OrderLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Category:       l.Category,
			PriceCents:     l.Price,
			Quantity:       l.Quantity,
			LineTotalCents: l.LineTotal(),
		})
	}
	return out
}

// CartResponse — снимок корзины с производными суммами.
type CartResponse struct {
	Items         []OrderLineResponse `json:"items"`
	SubtotalCents int64               `json:"subtotal_cents"`
	Subtotal      string              `json:"subtotal"`
	TaxCents      int64               `json:"tax_cents"`
	Tax           string              `json:"tax"`
	TotalCents    int64               `json:"total_cents"`
	Total         string              `json:"total"`
}

func NewCartResponse(view *usecase.CartView) *CartResponse {
	return &CartResponse{
		Items:         newOrderLineResponses(view.Lines),
		SubtotalCents: view.Subtotal,
		Subtotal:      formatCents(view.Subtotal),
		TaxCents:      view.Tax,
		Tax:           formatCents(view.Tax),
		TotalCents:    view.GrandTotal,
		Total:         formatCents(view.GrandTotal),
	}
}

// OrderResponse — заказ журнала в ответах API.
type OrderResponse struct {
	ID            string              `json:"id"`
	Number        int                 `json:"order_number"`
	Items         []OrderLineResponse `json:"items"`
	TotalCents    int64               `json:"total_cents"`
	Total         string              `json:"total"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	PaymentMethod string              `json:"payment_method"`
	WaiterID      string              `json:"waiter_id"`
	WaiterName    string              `json:"waiter_name"`
}

func NewOrderResponse(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		Items:         newOrderLineResponses(o.Lines),
		TotalCents:    o.Total,
		Total:         formatCents(o.Total),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		PaymentMethod: string(o.Payment),
		WaiterID:      o.WaiterID,
		WaiterName:    o.WaiterName,
	}
}

func NewOrderListResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *NewOrderResponse(&orders[i]))
	}
	return out
}

// KitchenOrderResponse — заказ на кухонной доске. Возраст заказа
// вычисляется в момент сериализации, в журнале он не хранится.
type KitchenOrderResponse struct {
	OrderResponse
	AgeMinutes int `json:"age_minutes"`
}

func NewKitchenOrderResponse(o *domain.Order, now time.Time) *KitchenOrderResponse {
	age := int(now.Sub(o.CreatedAt).Minutes())
	if age < 0 {
		age = 0
	}

	return &KitchenOrderResponse{
		OrderResponse: *NewOrderResponse(o),
		AgeMinutes:    age,
	}
}

func NewKitchenBoardResponse(orders []domain.Order, now time.Time) []KitchenOrderResponse {
	out := make([]KitchenOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *NewKitchenOrderResponse(&orders[i], now))
	}
	return out
}

// DailyRevenueResponse — точка ряда выручки. Label — подпись "день/месяц".
type DailyRevenueResponse struct {
	Date         string `json:"date"`
	Label        string `json:"label"`
	RevenueCents int64  `json:"revenue_cents"`
}

// BreakdownResponse — строка разбивки выручки.
type BreakdownResponse struct {
	Name         string `json:"name"`
	RevenueCents int64  `json:"revenue_cents"`
	Revenue      string `json:"revenue"`
}

// DashboardResponse — агрегаты дашборда за выбранный период.
type DashboardResponse struct {
	TotalRevenueCents  int64                  `json:"total_revenue_cents"`
	TotalRevenue       string                 `json:"total_revenue"`
	TotalOrders        int                    `json:"total_orders"`
	AvgOrderValueCents int64                  `json:"avg_order_value_cents"`
	AvgOrderValue      string                 `json:"avg_order_value"`
	RevenuePerDayCents int64                  `json:"revenue_per_day_cents"`
	RevenuePerDay      string                 `json:"revenue_per_day"`
	Daily              []DailyRevenueResponse `json:"daily"`
	Categories         []BreakdownResponse    `json:"categories"`
	Waiters            []BreakdownResponse    `json:"waiters"`
	Orders             []OrderResponse        `json:"orders"`
}

func NewDashboardResponse(report *usecase.Report) *DashboardResponse {
	daily := make([]DailyRevenueResponse, 0, len(report.Daily))
	for _, d := range report.Daily {
		daily = append(daily, DailyRevenueResponse{
			Date:         d.Day.Format("2006-01-02"),
			Label:        d.Day.Format("02/01"),
			RevenueCents: d.Revenue,
		})
	}

	return &DashboardResponse{
		TotalRevenueCents:  report.TotalRevenue,
		TotalRevenue:       formatCents(report.TotalRevenue),
		TotalOrders:        report.TotalOrders,
		AvgOrderValueCents: report.AvgOrderValue,
		AvgOrderValue:      formatCents(report.AvgOrderValue),
		RevenuePerDayCents: report.RevenuePerDay,
		RevenuePerDay:      formatCents(report.RevenuePerDay),
		Daily:              daily,
		Categories:         newBreakdownResponses(report.Categories),
		Waiters:            newBreakdownResponses(report.Waiters),
		Orders:             NewOrderListResponse(report.Orders),
	}
}

func newBreakdownResponses(entries []usecase.BreakdownEntry) []BreakdownResponse {
	out := make([]BreakdownResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, BreakdownResponse{
			Name:         entry.Name,
			RevenueCents: entry.Revenue,
			Revenue:      formatCents(entry.Revenue),
		})
	}
	return out
}

// ExportResponse — результат выгрузки отчёта в архив.
type ExportResponse struct {
	ObjectKey string `json:"object_key"`
}
