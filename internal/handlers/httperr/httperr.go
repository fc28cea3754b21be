// Package httperr maps service errors onto HTTP status codes.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/library/internal/circulation"
	cardrepo "github.com/GlebRadaev/library/internal/repo/card-repo"
	catalogrepo "github.com/GlebRadaev/library/internal/repo/catalog-repo"
	issuerepo "github.com/GlebRadaev/library/internal/repo/issue-repo"
	requestrepo "github.com/GlebRadaev/library/internal/repo/request-repo"
	userrepo "github.com/GlebRadaev/library/internal/repo/user-repo"
	"github.com/GlebRadaev/library/internal/service/authservice"
	"github.com/GlebRadaev/library/internal/service/cardservice"
	"github.com/GlebRadaev/library/internal/service/catalogservice"
	"github.com/GlebRadaev/library/internal/service/issueservice"
	"github.com/GlebRadaev/library/internal/service/requestservice"
	"github.com/GlebRadaev/library/pkg/utils"
	"go.uber.org/zap"
)

var statuses = []struct {
	code int
	errs []error
}{
	{http.StatusPaymentRequired, []error{circulation.ErrOutstandingFine}},
	{http.StatusUnprocessableEntity, []error{circulation.ErrMissingAddress}},
	{http.StatusConflict, []error{
		circulation.ErrBorrowLimit,
		circulation.ErrInvalidTransition,
		requestservice.ErrInvalidTransition,
		requestservice.ErrNotInCatalog,
		catalogrepo.ErrAuthorExists,
		cardrepo.ErrCardCodeTaken,
		authservice.ErrLoginTaken,
		userrepo.ErrLoginTaken,
	}},
	{http.StatusNotFound, []error{
		issueservice.ErrIssueNotFound,
		issueservice.ErrCardNotFound,
		issueservice.ErrBookNotFound,
		issueservice.ErrReturnDayNotFound,
		issueservice.ErrInvoiceNotFound,
		cardservice.ErrCardNotFound,
		cardservice.ErrStudentNotFound,
		cardservice.ErrTeacherNotFound,
		catalogservice.ErrBookNotFound,
		requestservice.ErrRequestNotFound,
		requestservice.ErrCardNotFound,
		requestservice.ErrBookNotFound,
	}},
	{http.StatusBadRequest, []error{
		cardservice.ErrInvalidHolder,
		cardservice.ErrInvalidCardCode,
		catalogservice.ErrInvalidReturnDay,
		requestservice.ErrInvalidRequest,
		catalogrepo.ErrUnknownReference,
		cardrepo.ErrUnknownHolder,
		issuerepo.ErrUnknownReference,
		requestrepo.ErrUnknownReference,
	}},
}

func Status(err error) int {
	for _, s := range statuses {
		for _, target := range s.errs {
			if errors.Is(err, target) {
				return s.code
			}
		}
	}
	return http.StatusInternalServerError
}

// Respond writes err with its mapped status. Unknown errors are logged and
// hidden from the client.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
