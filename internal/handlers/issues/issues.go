package issues

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

//go:generate mockgen -source=issues.go -destination=mock_issues.go -package=issues

type Service interface {
	Create(ctx context.Context, in domain.NewIssue) (*domain.BookIssue, error)
	Get(ctx context.Context, id int) (*domain.BookIssue, error)
	List(ctx context.Context, filter domain.IssueFilter) ([]domain.BookIssue, error)
	Issue(ctx context.Context, id int) (*domain.BookIssue, error)
	Reissue(ctx context.Context, id int) (*domain.BookIssue, error)
	Return(ctx context.Context, id int) (*domain.BookIssue, error)
	Lost(ctx context.Context, id int) (*domain.BookIssue, error)
	Cancel(ctx context.Context, id int) (*domain.BookIssue, error)
	Draft(ctx context.Context, id int) (*domain.BookIssue, error)
	Fine(ctx context.Context, id int) (*domain.BookIssue, error)
	Pay(ctx context.Context, id int) (*domain.BookIssue, error)
	Invoice(ctx context.Context, id int) (*domain.Invoice, error)
}

type action func(ctx context.Context, id int) (*domain.BookIssue, error)

var states = map[domain.IssueState]struct{}{
	domain.IssueDraft:   {},
	domain.IssueIssued:  {},
	domain.IssueReissue: {},
	domain.IssueCancel:  {},
	domain.IssueReturn:  {},
	domain.IssueLost:    {},
	domain.IssueFine:    {},
	domain.IssuePaid:    {},
}

type IssueHandler struct {
	issueService Service
	actions      map[string]action
}

func New(issueService Service) *IssueHandler {
	return &IssueHandler{
		issueService: issueService,
		actions: map[string]action{
			"issue":   issueService.Issue,
			"reissue": issueService.Reissue,
			"return":  issueService.Return,
			"lost":    issueService.Lost,
			"cancel":  issueService.Cancel,
			"draft":   issueService.Draft,
			"fine":    issueService.Fine,
			"pay":     issueService.Pay,
		},
	}
}

// CreateIssue godoc
//
//	@Summary		Start a checkout
//	@Description	Creates a draft book issue. Holder details are copied from the card; the return date follows from the loan policy.
//	@Tags			Issues
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.IssueRequestDTO	true	"Checkout"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.IssueResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Card, book or policy not found"
//	@Failure		409	{object}	utils.Response	"Book issue limit is over on this card"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/issues [post]
func (h *IssueHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	issue, err := h.issueService.Create(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewIssueResponse(*issue))
}

// GetIssue godoc
//
//	@Summary	Get a book issue
//	@Tags		Issues
//	@Produce	json
//	@Param		id	path	int	true	"Issue id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.IssueResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Book issue not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/issues/{id} [get]
func (h *IssueHandler) GetIssue(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	issue, err := h.issueService.Get(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewIssueResponse(*issue))
}

// ListIssues godoc
//
//	@Summary	List book issues
//	@Tags		Issues
//	@Produce	json
//	@Param		card_id	query	int		false	"Card id"
//	@Param		state	query	string	false	"Issue state"	Enums(draft, issue, reissue, cancel, return, lost, fine, paid)
//	@Security	BearerAuth
//	@Success	200	{array}		dto.IssueResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid filter"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/issues [get]
func (h *IssueHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	var filter domain.IssueFilter
	cardID, err := utils.QueryInt(r, "card_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.CardID = cardID
	if raw := r.URL.Query().Get("state"); raw != "" {
		state := domain.IssueState(raw)
		if _, ok := states[state]; !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid state")
			return
		}
		filter.State = &state
	}

	issues, err := h.issueService.List(r.Context(), filter)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.IssueResponseDTO, 0, len(issues))
	for _, i := range issues {
		response = append(response, dto.NewIssueResponse(i))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Transition godoc
//
//	@Summary		Move a book issue to another state
//	@Description	issue and reissue check the card's borrow limit; issue also refuses cards with unpaid fines. lost records the book price as lost penalty and scraps the book. fine bills the borrower with an invoice; pay marks that invoice paid.
//	@Tags			Issues
//	@Produce		json
//	@Param			id		path	int		true	"Issue id"
//	@Param			action	path	string	true	"Action"	Enums(issue, reissue, return, lost, cancel, draft, fine, pay)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.IssueResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		402	{object}	utils.Response	"Card has unpaid fines"
//	@Failure		404	{object}	utils.Response	"Book issue not found or unknown action"
//	@Failure		409	{object}	utils.Response	"Action not allowed or borrow limit reached"
//	@Failure		422	{object}	utils.Response	"Borrower has no address"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/issues/{id}/{action} [post]
func (h *IssueHandler) Transition(w http.ResponseWriter, r *http.Request) {
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
	issue, err := do(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewIssueResponse(*issue))
}

// GetInvoice godoc
//
//	@Summary	View the fine invoice of a book issue
//	@Tags		Issues
//	@Produce	json
//	@Param		id	path	int	true	"Issue id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.InvoiceResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"No invoice for this book issue"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/issues/{id}/invoice [get]
func (h *IssueHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	inv, err := h.issueService.Invoice(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvoiceResponse(*inv))
}
