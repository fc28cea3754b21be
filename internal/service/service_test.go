package service

import (
	"testing"

	"github.com/GlebRadaev/library/internal/pg"
	"github.com/GlebRadaev/library/internal/repo"
	"github.com/GlebRadaev/library/internal/service/cardservice"
	"github.com/GlebRadaev/library/pkg/auth"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))

	services := New(repos, auth.NewMockJWTServiceInterface(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.CardService)
	assert.NotNil(t, services.IssueService)
	assert.NotNil(t, services.RequestService)
	assert.IsType(t, &cardservice.Service{}, services.MemberService)
	assert.Same(t, services.CardService, services.MemberService)
}
