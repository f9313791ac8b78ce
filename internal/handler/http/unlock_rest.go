package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"unlock-service/internal/domain"
	"unlock-service/internal/usecase"
	"unlock-service/pkg/response"
	"unlock-service/pkg/xerrors"
)

const ackMessage = "Request received. We'll email you with next steps."

// UnlockResponse is the acknowledgment body returned to the submitting form.
type UnlockResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UnlockHandler struct {
	uc *usecase.UnlockUsecase
}

func NewUnlockHandler(uc *usecase.UnlockUsecase) *UnlockHandler {
	return &UnlockHandler{uc: uc}
}

// SubmitUnlockRequest handles POST /api/unlock. The acknowledgment is
// written before notifications are dispatched, so mail delivery can never
// hold the client connection open or fail the submission.
func (h *UnlockHandler) SubmitUnlockRequest(w http.ResponseWriter, r *http.Request) {
	var req domain.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationFailed(w, []xerrors.FieldError{
			{Field: "body", Message: "invalid JSON payload"},
		})
		return
	}

	id, err := h.uc.Submit(r.Context(), &req)
	if err != nil {
		var ve *xerrors.ValidationError
		if errors.As(err, &ve) {
			response.ValidationFailed(w, ve.Fields)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, UnlockResponse{ID: id, Message: ackMessage})

	h.uc.NotifyNewRequest(&req, id)
}

// ListUnlockRequests handles GET /api/unlock?limit=N.
func (h *UnlockHandler) ListUnlockRequests(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.uc.List(r.Context(), limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []*domain.StoredUnlockRequest{}
	}
	response.JSON(w, http.StatusOK, items)
}
