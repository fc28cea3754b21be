package requests

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/dto"
	"github.com/GlebRadaev/library/internal/handlers/httperr"
	"github.com/GlebRadaev/library/pkg/utils"
	"github.com/GlebRadaev/library/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=requests.go -destination=mock_requests.go -package=requests

type Service interface {
	Create(ctx context.Context, in domain.NewRequest) (*domain.BookRequest, error)
	Get(ctx context.Context, id int) (*domain.BookRequest, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookRequest, error)
	Confirm(ctx context.Context, id int) (*domain.BookRequest, error)
	Cancel(ctx context.Context, id int) (*domain.BookRequest, error)
	Draft(ctx context.Context, id int) (*domain.BookRequest, error)
}

type action func(ctx context.Context, id int) (*domain.BookRequest, error)

type RequestHandler struct {
	requestService Service
	actions        map[string]action
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		actions: map[string]action{
			"confirm": requestService.Confirm,
			"cancel":  requestService.Cancel,
			"draft":   requestService.Draft,
		},
	}
}

// CreateRequest godoc
//
//	@Summary		Request a book
//	@Description	A request either names a catalog book (type existing) or asks for a book the library does not have yet (type new).
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BookRequestCreateDTO	true	"Book request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BookRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Card or book not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [post]
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.BookRequestCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.requestService.Create(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBookRequestResponse(*created))
}

// GetRequest godoc
//
//	@Summary	Get a book request
//	@Tags		Requests
//	@Produce	json
//	@Param		id	path	int	true	"Request id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BookRequestResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Book request not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/requests/{id} [get]
func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookRequestResponse(*req))
}

// ListRequests godoc
//
//	@Summary	List book requests
//	@Tags		Requests
//	@Produce	json
//	@Param		card_id	query	int		false	"Card id"
//	@Param		state	query	string	false	"Request state"	Enums(draft, confirm, cancel)
//	@Security	BearerAuth
//	@Success	200	{array}		dto.BookRequestResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid filter"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/requests [get]
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	var filter domain.RequestFilter
	cardID, err := utils.QueryInt(r, "card_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.CardID = cardID
	if raw := r.URL.Query().Get("state"); raw != "" {
		state := domain.RequestState(raw)
		switch state {
		case domain.RequestDraft, domain.RequestConfirm, domain.RequestCancel:
			filter.State = &state
		default:
			utils.RespondWithError(w, http.StatusBadRequest, "invalid state")
			return
		}
	}

	reqs, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.BookRequestResponseDTO, 0, len(reqs))
	for _, req := range reqs {
		response = append(response, dto.NewBookRequestResponse(req))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Transition godoc
//
//	@Summary		Confirm, cancel or reopen a book request
//	@Description	confirm creates the book issue for the request's card and book; confirming again returns the same issue.
//	@Tags			Requests
//	@Produce		json
//	@Param			id		path	int		true	"Request id"
//	@Param			action	path	string	true	"Action"	Enums(confirm, cancel, draft)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BookRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Book request not found or unknown action"
//	@Failure		409	{object}	utils.Response	"Action not allowed or borrow limit reached"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/{action} [post]
func (h *RequestHandler) Transition(w http.ResponseWriter, r *http.Request) {
	do, ok := h.actions[chi.URLParam(r, "action")]
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown action")
		return
	}
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := do(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookRequestResponse(*req))
}
