package usecase

import (
	"time"

	"github.com/comptoir-pos/backend/internal/domain"
)

// CATALOG USECASE

// AddProductReq — запрос на добавление позиции каталога.
type AddProductReq struct {
	Name     string
	Category string
	Price    int64 // евроценты
}

// CART USECASE

// CartView — снимок корзины с производными суммами. Налог и итог с налогом —
// презентационные величины, они нигде не сохраняются.
type CartView struct {
	Lines      []domain.OrderLine
	Subtotal   int64
	Tax        int64
	GrandTotal int64
}

// ORDER USECASE

// CheckoutReq — запрос финализации корзины в заказ.
type CheckoutReq struct {
	Payment domain.PaymentMethod
}

// REPORT USECASE

// ReportReq — параметры выборки дашборда. Диапазон дат включающий,
// по календарным дням; WaiterID равный "all" отключает фильтр.
type ReportReq struct {
	Start    time.Time
	End      time.Time
	WaiterID string
}

// Report — агрегаты по отфильтрованному журналу. Все суммы в евроцентах.
type Report struct {
	TotalRevenue  int64
	TotalOrders   int
	AvgOrderValue int64
	RevenuePerDay int64
	Daily         []DailyRevenue
	Categories    []BreakdownEntry
	Waiters       []BreakdownEntry
	Orders        []domain.Order
}

// DailyRevenue — точка временного ряда выручки за календарный день.
type DailyRevenue struct {
	Day     time.Time
	Revenue int64
}

// BreakdownEntry — строка разбивки выручки (по категории или официанту).
type BreakdownEntry struct {
	Name    string
	Revenue int64
}

// ExportRes — результат выгрузки отчёта в архив.
type ExportRes struct {
	ObjectKey string
}

// MAPPERS

func NewAddProductReq(name, category string, price int64) *AddProductReq {
	return &AddProductReq{
		Name:     name,
		Category: category,
		Price:    price,
	}
}

func NewCheckoutReq(payment domain.PaymentMethod) *CheckoutReq {
	return &CheckoutReq{Payment: payment}
}

func NewReportReq(start, end time.Time, waiterID string) *ReportReq {
	return &ReportReq{
		Start:    start,
		End:      end,
		WaiterID: waiterID,
	}
}

func NewExportRes(objectKey string) *ExportRes {
	return &ExportRes{ObjectKey: objectKey}
}
