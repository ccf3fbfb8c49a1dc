package http

import (
	"net/http"
	"time"

	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/logger"
)

// dashboardDefaultDays — диапазон по умолчанию, последняя неделя.
const dashboardDefaultDays = 7

type DashboardHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
	now           func() time.Time
}

func NewDashboardHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		reportUsecase: reportUsecase,
		logger:        logger,
		now:           time.Now,
	}
}

// dashboard
//
//	@Summary		Дашборд выручки
//	@Description	Агрегаты по журналу за включающий диапазон дат, по умолчанию последние 7 дней
//	@Tags			dashboard
//	@Produce		json
//	@Param			start	query		string	false	"Начало диапазона, YYYY-MM-DD"
//	@Param			end		query		string	false	"Конец диапазона, YYYY-MM-DD"
//	@Param			waiter	query		string	false	"ID официанта либо all"
//	@Success		200		{object}	DashboardResponse	"Агрегаты периода"
//	@Failure		400		{object}	ErrorResponse		"Неверный диапазон дат"
//	@Router			/dashboard [get]
func (h *DashboardHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseReportReq(r)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	report, err := h.reportUsecase.Build(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewDashboardResponse(report))
}

// export
//
//	@Summary		Выгрузка отчёта
//	@Description	Складывает отчёт и попавшие в него заказы в архив объектного хранилища
//	@Tags			dashboard
//	@Produce		json
//	@Param			start	query		string	false	"Начало диапазона, YYYY-MM-DD"
//	@Param			end		query		string	false	"Конец диапазона, YYYY-MM-DD"
//	@Param			waiter	query		string	false	"ID официанта либо all"
//	@Success		201		{object}	ExportResponse	"Ключ загруженного объекта"
//	@Failure		503		{object}	ErrorResponse	"Архив не сконфигурирован"
//	@Router			/dashboard/export [post]
func (h *DashboardHandler) export(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseReportReq(r)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.reportUsecase.Export(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &ExportResponse{ObjectKey: res.ObjectKey})
}

func (h *DashboardHandler) parseReportReq(r *http.Request) (*usecase.ReportReq, error) {
	q := r.URL.Query()

	end := h.now()
	start := end.AddDate(0, 0, -(dashboardDefaultDays - 1))

	var err error
	if s := q.Get("start"); s != "" {
		if start, err = parseDate(s); err != nil {
			return nil, err
		}
	}
	if s := q.Get("end"); s != "" {
		if end, err = parseDate(s); err != nil {
			return nil, err
		}
	}

	waiter := q.Get("waiter")
	if waiter == "" {
		waiter = usecase.WaiterFilterAll
	}

	return usecase.NewReportReq(start, end, waiter), nil
}
