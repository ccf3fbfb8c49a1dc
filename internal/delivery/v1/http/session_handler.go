package http

import (
	"net/http"

	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUC
	logger         logger.Logger
}

func NewSessionHandler(sessionUsecase usecase.SessionUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{sessionUsecase: sessionUsecase, logger: logger}
}

type loginRequest struct {
	WaiterID string `json:"waiter_id"`
	PIN      string `json:"pin"`
}

// login
//
//	@Summary		Вход официанта
//	@Description	Сверяет PIN и делает официанта активным на терминале
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"ID официанта и PIN"
//	@Success		200		{object}	WaiterResponse	"Активный официант"
//	@Failure		401		{object}	ErrorResponse	"Неверный PIN"
//	@Router			/session/login [post]
func (h *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.WaiterID == "" || req.PIN == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	waiter, err := h.sessionUsecase.Login(r.Context(), req.WaiterID, req.PIN)
	if err != nil {
		h.logger.Warnf("login rejected for waiter %s", req.WaiterID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewWaiterResponse(waiter))
}

// logout
//
//	@Summary	Выход официанта
//	@Tags		session
//	@Success	204	"Сессия снята"
//	@Router		/session/logout [post]
func (h *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessionUsecase.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// current
//
//	@Summary	Активный официант
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	WaiterResponse	"Активный официант либо null"
//	@Router		/session [get]
func (h *SessionHandler) current(w http.ResponseWriter, r *http.Request) {
	waiter := h.sessionUsecase.Current(r.Context())
	if waiter == nil {
		WriteSuccess(w, http.StatusOK, nil)
		return
	}

	WriteSuccess(w, http.StatusOK, NewWaiterResponse(waiter))
}

// waiters
//
//	@Summary	Ростер официантов
//	@Tags		session
//	@Produce	json
//	@Success	200	{array}	WaiterResponse	"Список без PIN"
//	@Router		/waiters [get]
func (h *SessionHandler) waiters(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewWaiterListResponse(h.sessionUsecase.Waiters(r.Context())))
}
