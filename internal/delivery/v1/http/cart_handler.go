package http

import (
	"net/http"

	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

// view
//
//	@Summary	Текущая корзина
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse	"Строки и суммы корзины"
//	@Router		/cart [get]
func (h *CartHandler) view(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cartUsecase.View(r.Context())))
}

// addItem
//
//	@Summary		Добавление позиции в корзину
//	@Description	Повторное добавление того же товара увеличивает количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addItemRequest	true	"ID товара каталога"
//	@Success		200		{object}	CartResponse	"Обновлённая корзина"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.ProductID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	view, err := h.cartUsecase.AddItem(r.Context(), req.ProductID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// changeQuantity
//
//	@Summary		Изменение количества
//	@Description	Прибавляет delta к количеству строки, итог не ниже 1
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"ID товара"
//	@Param			request	body		changeQuantityRequest	true	"Смещение количества"
//	@Success		200		{object}	CartResponse			"Обновлённая корзина"
//	@Router			/cart/items/{id} [patch]
func (h *CartHandler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var req changeQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	view := h.cartUsecase.ChangeQuantity(r.Context(), chi.URLParam(r, "id"), req.Delta)
	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// removeItem
//
//	@Summary	Удаление строки корзины
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string			true	"ID товара"
//	@Success	200	{object}	CartResponse	"Обновлённая корзина"
//	@Router		/cart/items/{id} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	view := h.cartUsecase.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// clear
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Success	204	"Корзина пуста"
//	@Router		/cart [delete]
func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.cartUsecase.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
