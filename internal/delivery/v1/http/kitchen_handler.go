package http

import (
	"net/http"
	"time"

	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type KitchenHandler struct {
	kitchenUsecase usecase.KitchenUC
	logger         logger.Logger
	now            func() time.Time
}

func NewKitchenHandler(kitchenUsecase usecase.KitchenUC, logger logger.Logger) *KitchenHandler {
	return &KitchenHandler{
		kitchenUsecase: kitchenUsecase,
		logger:         logger,
		now:            time.Now,
	}
}

// activeBoard
//
//	@Summary		Доска активных заказов
//	@Description	Оплаченные заказы в работе, старые первыми
//	@Tags			kitchen
//	@Produce		json
//	@Success		200	{array}	KitchenOrderResponse	"Активные заказы с возрастом в минутах"
//	@Router			/kitchen/active [get]
func (h *KitchenHandler) activeBoard(w http.ResponseWriter, r *http.Request) {
	orders := h.kitchenUsecase.ActiveBoard(r.Context())
	WriteSuccess(w, http.StatusOK, NewKitchenBoardResponse(orders, h.now()))
}

// readyBoard
//
//	@Summary		Доска готовых заказов
//	@Description	Последние готовые к выдаче заказы
//	@Tags			kitchen
//	@Produce		json
//	@Success		200	{array}	KitchenOrderResponse	"Готовые заказы"
//	@Router			/kitchen/ready [get]
func (h *KitchenHandler) readyBoard(w http.ResponseWriter, r *http.Request) {
	orders := h.kitchenUsecase.ReadyBoard(r.Context())
	WriteSuccess(w, http.StatusOK, NewKitchenBoardResponse(orders, h.now()))
}

// markReady
//
//	@Summary		Заказ готов
//	@Description	Переводит оплаченный заказ в готовые. Неизвестный ID — no-op
//	@Tags			kitchen
//	@Produce		json
//	@Param			id	path		string			true	"ID заказа"
//	@Success		200	{object}	OrderResponse	"Обновлённый заказ"
//	@Success		204	"Заказ не найден"
//	@Failure		409	{object}	ErrorResponse	"Заказ не в статусе PAID"
//	@Router			/kitchen/orders/{id}/ready [post]
func (h *KitchenHandler) markReady(w http.ResponseWriter, r *http.Request) {
	order, err := h.kitchenUsecase.MarkReady(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}

// archive
//
//	@Summary		Выдача заказа
//	@Description	Переводит готовый заказ в выданные. Неизвестный ID — no-op
//	@Tags			kitchen
//	@Produce		json
//	@Param			id	path		string			true	"ID заказа"
//	@Success		200	{object}	OrderResponse	"Обновлённый заказ"
//	@Success		204	"Заказ не найден"
//	@Failure		409	{object}	ErrorResponse	"Заказ не в статусе PREPARED"
//	@Router			/kitchen/orders/{id}/archive [post]
func (h *KitchenHandler) archive(w http.ResponseWriter, r *http.Request) {
	order, err := h.kitchenUsecase.Archive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}
