package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WaiterFilterAll отключает фильтр по официанту.
const WaiterFilterAll = "all"

// ReportUsecase — read-only агрегация журнала заказов для дашборда.
// Никакого разделяемого аккумулятора: каждый запрос пересчитывает
// все разбивки с нуля.
type ReportUsecase struct {
	store    *store.Store
	exporter ExportRepository // nil, если архив экспортов не сконфигурирован
	logger   logger.Logger
	now      func() time.Time
}

func NewReportUC(store *store.Store, exporter ExportRepository, logger logger.Logger) *ReportUsecase {
	return &ReportUsecase{
		store:    store,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Build считает агрегаты по заказам, чья дата создания попадает в
// включающий диапазон [start 00:00, end 23:59:59] и чей официант проходит
// фильтр. Выручка и разбивки точны в евроцентах.
func (r *ReportUsecase) Build(ctx context.Context, req *ReportReq) (*Report, error) {
	const op = "ReportUsecase.Build"

	startDay := dayOf(req.Start)
	endDay := dayOf(req.End)
	if endDay.Before(startDay) {
		return nil, e.Wrap(op, e.ErrInvalidDateRange)
	}
	endExclusive := endDay.AddDate(0, 0, 1)

	r.store.Lock()
	filtered := make([]domain.Order, 0)
	for _, o := range r.store.Orders {
		if o.CreatedAt.Before(startDay) || !o.CreatedAt.Before(endExclusive) {
			continue
		}
		if req.WaiterID != "" && req.WaiterID != WaiterFilterAll && o.WaiterID != req.WaiterID {
			continue
		}
		filtered = append(filtered, o)
	}
	r.store.Unlock()

	report := &Report{
		TotalOrders: len(filtered),
		Daily:       buildDailySeries(filtered),
		Categories:  buildCategoryBreakdown(filtered),
		Waiters:     buildWaiterBreakdown(filtered),
		Orders:      filtered,
	}

	for _, o := range filtered {
		report.TotalRevenue += o.Total
	}
	// Средний чек округляется до ближайшего цента, а не усекается.
	if report.TotalOrders > 0 {
		report.AvgOrderValue = decimal.NewFromInt(report.TotalRevenue).
			Div(decimal.NewFromInt(int64(report.TotalOrders))).
			Round(0).
			IntPart()
	}

	// Делитель — число целых суток диапазона, минимум одни:
	// однодневный диапазон не делит на ноль.
	days := int64(endDay.Sub(startDay).Hours() / 24)
	if days < 1 {
		days = 1
	}
	report.RevenuePerDay = report.TotalRevenue / days

	return report, nil
}

// Export собирает отчёт и выгружает его вместе с попавшими в выборку
// заказами в архив объектного хранилища.
func (r *ReportUsecase) Export(ctx context.Context, req *ReportReq) (*ExportRes, error) {
	const op = "ReportUsecase.Export"

	if r.exporter == nil {
		return nil, e.Wrap(op, e.ErrExportDisabled)
	}

	report, err := r.Build(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(exportPayload{
		GeneratedAt:   r.now().Format(time.RFC3339),
		RangeStart:    dayOf(req.Start).Format("2006-01-02"),
		RangeEnd:      dayOf(req.End).Format("2006-01-02"),
		WaiterFilter:  req.WaiterID,
		TotalRevenue:  report.TotalRevenue,
		TotalOrders:   report.TotalOrders,
		AvgOrderValue: report.AvgOrderValue,
		RevenuePerDay: report.RevenuePerDay,
		Orders:        report.Orders,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	objectKey := fmt.Sprintf("exports/%s_%s-%s.json",
		dayOf(req.Start).Format("2006-01-02"),
		dayOf(req.End).Format("2006-01-02"),
		uuid.NewString(),
	)

	key, err := r.exporter.StoreExport(ctx, objectKey, payload)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.logger.Infof("dashboard export stored: %s", key)
	return NewExportRes(key), nil
}

type exportPayload struct {
	GeneratedAt   string         `json:"generated_at"`
	RangeStart    string         `json:"range_start"`
	RangeEnd      string         `json:"range_end"`
	WaiterFilter  string         `json:"waiter_filter"`
	TotalRevenue  int64          `json:"total_revenue_cents"`
	TotalOrders   int            `json:"total_orders"`
	AvgOrderValue int64          `json:"avg_order_value_cents"`
	RevenuePerDay int64          `json:"revenue_per_day_cents"`
	Orders        []domain.Order `json:"orders"`
}

// buildDailySeries суммирует выручку по календарным дням, хронологически.
func buildDailySeries(orders []domain.Order) []DailyRevenue {
	byDay := make(map[time.Time]int64)
	for _, o := range orders {
		byDay[dayOf(o.CreatedAt)] += o.Total
	}

	out := make([]DailyRevenue, 0, len(byDay))
	for day, revenue := range byDay {
		out = append(out, DailyRevenue{Day: day, Revenue: revenue})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})

	return out
}

// buildCategoryBreakdown суммирует price×quantity строк всех заказов выборки
// по категории, в порядке первого появления категории.
func buildCategoryBreakdown(orders []domain.Order) []BreakdownEntry {
	idx := make(map[string]int)
	out := make([]BreakdownEntry, 0)
	for _, o := range orders {
		for _, l := range o.Lines {
			i, ok := idx[l.Category]
			if !ok {
				i = len(out)
				idx[l.Category] = i
				out = append(out, BreakdownEntry{Name: l.Category})
			}
			out[i].Revenue += l.LineTotal()
		}
	}
	return out
}

// buildWaiterBreakdown суммирует итоги заказов по имени официанта,
// в порядке первого появления.
func buildWaiterBreakdown(orders []domain.Order) []BreakdownEntry {
	idx := make(map[string]int)
	out := make([]BreakdownEntry, 0)
	for _, o := range orders {
		i, ok := idx[o.WaiterName]
		if !ok {
			i = len(out)
			idx[o.WaiterName] = i
			out = append(out, BreakdownEntry{Name: o.WaiterName})
		}
		out[i].Revenue += o.Total
	}
	return out
}

// dayOf обрезает момент времени до полуночи его календарного дня.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
