package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/dto"
	"github.com/GlebRadaev/library/internal/handlers/httperr"
	"github.com/GlebRadaev/library/pkg/utils"
	"github.com/GlebRadaev/library/pkg/validate"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=catalog

type Service interface {
	CreatePriceCategory(ctx context.Context, c *domain.PriceCategory) error
	ListPriceCategories(ctx context.Context) ([]domain.PriceCategory, error)
	CreateRack(ctx context.Context, rack *domain.Rack) error
	ListRacks(ctx context.Context) ([]domain.Rack, error)
	CreateCollection(ctx context.Context, c *domain.Collection) error
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	CreateReturnDay(ctx context.Context, rd *domain.ReturnDay) error
	ListReturnDays(ctx context.Context) ([]domain.ReturnDay, error)
	CreateAuthor(ctx context.Context, a *domain.Author) error
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	CreateBook(ctx context.Context, b *domain.Book) error
	GetBook(ctx context.Context, id int) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

type request[M any] interface {
	ToDomain() *M
}

// create decodes and validates a request DTO of type D, stores the record
// it describes and answers with that record.
func create[D request[M], M any](w http.ResponseWriter, r *http.Request, save func(context.Context, *M) error) {
	var req D
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	m := req.ToDomain()
	if err := save(r.Context(), m); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, m)
}

func list[M any](w http.ResponseWriter, r *http.Request, load func(context.Context) ([]M, error)) {
	items, err := load(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if items == nil {
		items = []M{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// CreatePriceCategory godoc
//
//	@Summary	Add a price category
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.PriceCategoryRequestDTO	true	"Price category"
//	@Security	BearerAuth
//	@Success	201	{object}	domain.PriceCategory
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/price-categories [post]
func (h *CatalogHandler) CreatePriceCategory(w http.ResponseWriter, r *http.Request) {
	create[dto.PriceCategoryRequestDTO](w, r, h.catalogService.CreatePriceCategory)
}

// ListPriceCategories godoc
//
//	@Summary	List price categories
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.PriceCategory
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/price-categories [get]
func (h *CatalogHandler) ListPriceCategories(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.catalogService.ListPriceCategories)
}

// CreateRack godoc
//
//	@Summary	Add a rack
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.RackRequestDTO	true	"Rack"
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Rack
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/racks [post]
func (h *CatalogHandler) CreateRack(w http.ResponseWriter, r *http.Request) {
	create[dto.RackRequestDTO](w, r, h.catalogService.CreateRack)
}

// ListRacks godoc
//
//	@Summary	List racks
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Rack
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/racks [get]
func (h *CatalogHandler) ListRacks(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.catalogService.ListRacks)
}

// CreateCollection godoc
//
//	@Summary	Add a collection
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CollectionRequestDTO	true	"Collection"
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Collection
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/collections [post]
func (h *CatalogHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	create[dto.CollectionRequestDTO](w, r, h.catalogService.CreateCollection)
}

// ListCollections godoc
//
//	@Summary	List collections
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Collection
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/collections [get]
func (h *CatalogHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.catalogService.ListCollections)
}

// CreateReturnDay godoc
//
//	@Summary		Add a loan policy
//	@Description	A loan policy sets the number of days a book may be kept and the fine per late day.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ReturnDayRequestDTO	true	"Loan policy"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.ReturnDay
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/catalog/return-days [post]
func (h *CatalogHandler) CreateReturnDay(w http.ResponseWriter, r *http.Request) {
	create[dto.ReturnDayRequestDTO](w, r, h.catalogService.CreateReturnDay)
}

// ListReturnDays godoc
//
//	@Summary	List loan policies
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.ReturnDay
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/return-days [get]
func (h *CatalogHandler) ListReturnDays(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.catalogService.ListReturnDays)
}

// CreateAuthor godoc
//
//	@Summary	Add an author
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.AuthorRequestDTO	true	"Author"
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Author
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	409	{object}	utils.Response	"Author name already used"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/authors [post]
func (h *CatalogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	create[dto.AuthorRequestDTO](w, r, h.catalogService.CreateAuthor)
}

// ListAuthors godoc
//
//	@Summary	List authors
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Author
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/authors [get]
func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.catalogService.ListAuthors)
}

// CreateBook godoc
//
//	@Summary	Add a book
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.BookRequestDTO	true	"Book"
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Book
//	@Failure	400	{object}	utils.Response	"Invalid request body or unknown reference"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/books [post]
func (h *CatalogHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	create[dto.BookRequestDTO](w, r, h.catalogService.CreateBook)
}

// GetBook godoc
//
//	@Summary	Get a book
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path	int	true	"Book id"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Book
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Book not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/books/{id} [get]
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	book, err := h.catalogService.GetBook(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, book)
}

// ListBooks godoc
//
//	@Summary	List books
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Book
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/catalog/books [get]
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.catalogService.ListBooks)
}
