package cards

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

//go:generate mockgen -source=cards.go -destination=mock_cards.go -package=cards

type Service interface {
	CreateCard(ctx context.Context, card *domain.Card) error
	GetCard(ctx context.Context, id int) (*domain.Card, error)
	GetCardByCode(ctx context.Context, code string) (*domain.Card, error)
	ListCards(ctx context.Context) ([]domain.Card, error)
}

type CardHandler struct {
	cardService Service
}

func New(cardService Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// CreateCard godoc
//
//	@Summary		Open a library card
//	@Description	Creates a card for exactly one student or teacher. The holder's name, standard and roll number are copied onto the card and a card number with a Luhn check digit is assigned.
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CardRequestDTO	true	"Card"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CardResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or holder"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Holder not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cards [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	card := req.ToDomain()
	if err := h.cardService.CreateCard(r.Context(), card); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCardResponse(*card))
}

// GetCard godoc
//
//	@Summary	Get a card
//	@Tags		Cards
//	@Produce	json
//	@Param		id	path	int	true	"Card id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CardResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Card not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/cards/{id} [get]
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	card, err := h.cardService.GetCard(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCardResponse(*card))
}

// GetCardByCode godoc
//
//	@Summary	Find a card by its number
//	@Tags		Cards
//	@Produce	json
//	@Param		code	path	string	true	"Card number"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CardResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid check digit"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Card not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/cards/code/{code} [get]
func (h *CardHandler) GetCardByCode(w http.ResponseWriter, r *http.Request) {
	card, err := h.cardService.GetCardByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCardResponse(*card))
}

// ListCards godoc
//
//	@Summary	List cards
//	@Tags		Cards
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.CardResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/cards [get]
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.ListCards(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.CardResponseDTO, 0, len(cards))
	for _, c := range cards {
		response = append(response, dto.NewCardResponse(c))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
