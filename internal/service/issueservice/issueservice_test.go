package issueservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/library/internal/circulation"
	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var now = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

type mocks struct {
	issues   *MockIssueRepo
	invoices *MockInvoiceRepo
	cards    *MockCardRepo
	catalog  *MockCatalogRepo
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		issues:   NewMockIssueRepo(ctrl),
		invoices: NewMockInvoiceRepo(ctrl),
		cards:    NewMockCardRepo(ctrl),
		catalog:  NewMockCatalogRepo(ctrl),
	}
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.issues, m.invoices, m.cards, m.catalog, tx)
	service.now = func() time.Time { return now }
	return service, m
}

func ptr[T any](v T) *T {
	return &v
}

func studentCard(limit int) *domain.Card {
	return &domain.Card{ID: 3, Code: "000000018", BookLimit: limit, User: domain.HolderStudent, StudentID: ptr(7), Standard: "5A", RollNo: 12, HolderName: "Ann"}
}

func draftIssue() *domain.BookIssue {
	return &domain.BookIssue{
		ID:         5,
		IssueCode:  "BI/00005",
		BookID:     1,
		CardID:     3,
		User:       "Student",
		StudentID:  ptr(7),
		HolderName: "Ann",
		DateIssue:  now.Add(-24 * time.Hour),
		State:      domain.IssueDraft,
	}
}

func TestCreate(t *testing.T) {
	policy := &domain.ReturnDay{ID: 2, Day: 14, FineAmount: 5}
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		input         domain.NewIssue
		prepareMock   func(m mocks)
		expectedError error
		check         func(t *testing.T, issue *domain.BookIssue)
	}{
		{
			name:  "Draft created with holder details and return date",
			input: domain.NewIssue{BookID: 1, CardID: 3, ReturnDayID: ptr(2), DateIssue: &issued},
			prepareMock: func(m mocks) {
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(2), nil)
				m.catalog.EXPECT().GetBook(gomock.Any(), 1).Return(&domain.Book{ID: 1, Name: "Dune", Price: 30}, nil)
				m.catalog.EXPECT().GetReturnDay(gomock.Any(), 2).Return(policy, nil)
				m.issues.EXPECT().CountActive(gomock.Any(), 3, 0).Return(1, nil)
				m.issues.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i *domain.BookIssue) error {
					i.ID = 5
					i.IssueCode = "BI/00005"
					return nil
				})
			},
			check: func(t *testing.T, issue *domain.BookIssue) {
				assert.Equal(t, domain.IssueDraft, issue.State)
				assert.Equal(t, "Student", issue.User)
				assert.Equal(t, ptr(7), issue.StudentID)
				assert.Equal(t, "5A", issue.Standard)
				assert.Equal(t, 12, issue.RollNo)
				require.NotNil(t, issue.DateReturn)
				assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *issue.DateReturn)
				assert.Equal(t, 85.0, issue.Penalty)
				assert.Equal(t, "BI/00005", issue.IssueCode)
			},
		},
		{
			name:  "Full card",
			input: domain.NewIssue{BookID: 1, CardID: 3},
			prepareMock: func(m mocks) {
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(2), nil)
				m.catalog.EXPECT().GetBook(gomock.Any(), 1).Return(&domain.Book{ID: 1}, nil)
				m.issues.EXPECT().CountActive(gomock.Any(), 3, 0).Return(2, nil)
			},
			expectedError: circulation.ErrBorrowLimit,
		},
		{
			name:  "Unknown card",
			input: domain.NewIssue{BookID: 1, CardID: 3},
			prepareMock: func(m mocks) {
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrCardNotFound,
		},
		{
			name:  "Unknown book",
			input: domain.NewIssue{BookID: 1, CardID: 3},
			prepareMock: func(m mocks) {
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(2), nil)
				m.catalog.EXPECT().GetBook(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrBookNotFound,
		},
		{
			name:  "Unknown return policy",
			input: domain.NewIssue{BookID: 1, CardID: 3, ReturnDayID: ptr(9)},
			prepareMock: func(m mocks) {
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(2), nil)
				m.catalog.EXPECT().GetBook(gomock.Any(), 1).Return(&domain.Book{ID: 1}, nil)
				m.catalog.EXPECT().GetReturnDay(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: ErrReturnDayNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			issue, err := service.Create(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, issue)
				return
			}
			require.NoError(t, err)
			tt.check(t, issue)
		})
	}
}

func TestIssue(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
		errorText     string
	}{
		{
			name: "Issued below the limit",
			prepareMock: func(m mocks) {
				m.issues.EXPECT().Lock(gomock.Any(), 5).Return(draftIssue(), nil)
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(2), nil)
				m.issues.EXPECT().List(gomock.Any(), domain.IssueFilter{CardID: ptr(3), State: ptr(domain.IssueFine)}).Return(nil, nil)
				m.issues.EXPECT().CountActive(gomock.Any(), 3, 5).Return(1, nil)
				m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i *domain.BookIssue) error {
					assert.Equal(t, domain.IssueIssued, i.State)
					return nil
				})
			},
		},
		{
			name: "Card at its limit",
			prepareMock: func(m mocks) {
				m.issues.EXPECT().Lock(gomock.Any(), 5).Return(draftIssue(), nil)
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(2), nil)
				m.issues.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.issues.EXPECT().CountActive(gomock.Any(), 3, 5).Return(2, nil)
			},
			expectedError: circulation.ErrBorrowLimit,
		},
		{
			name: "Outstanding fine",
			prepareMock: func(m mocks) {
				m.issues.EXPECT().Lock(gomock.Any(), 5).Return(draftIssue(), nil)
				m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(2), nil)
				m.issues.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.BookIssue{
					{IssueCode: "BI/00001", State: domain.IssueFine},
				}, nil)
			},
			expectedError: circulation.ErrOutstandingFine,
			errorText:     "BI/00001",
		},
		{
			name: "Already returned",
			prepareMock: func(m mocks) {
				issue := draftIssue()
				issue.State = domain.IssueReturn
				m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
			},
			expectedError: circulation.ErrInvalidTransition,
		},
		{
			name: "Unknown issue",
			prepareMock: func(m mocks) {
				m.issues.EXPECT().Lock(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrIssueNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			issue, err := service.Issue(context.Background(), 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				if tt.errorText != "" {
					assert.Contains(t, err.Error(), tt.errorText)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.IssueIssued, issue.State)
		})
	}
}

func TestReissue(t *testing.T) {
	service, m := NewMock(t)

	issue := draftIssue()
	issue.State = domain.IssueIssued
	issue.DateIssue = now.Add(-20 * 24 * time.Hour)
	issue.ReturnDayID = ptr(2)

	m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
	m.catalog.EXPECT().GetReturnDay(gomock.Any(), 2).Return(&domain.ReturnDay{ID: 2, Day: 14, FineAmount: 1}, nil).Times(2)
	m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(1), nil)
	m.issues.EXPECT().CountActive(gomock.Any(), 3, 5).Return(0, nil)
	m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	res, err := service.Reissue(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueReissue, res.State)
	assert.Equal(t, now, res.DateIssue)
	assert.Equal(t, now.Add(14*24*time.Hour), *res.DateReturn)
	assert.Zero(t, res.Penalty)
}

func TestReissueAtLimit(t *testing.T) {
	service, m := NewMock(t)

	issue := draftIssue()
	issue.State = domain.IssueIssued
	issue.DateIssue = now.Add(-20 * 24 * time.Hour)
	issue.ReturnDayID = ptr(2)

	m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
	m.catalog.EXPECT().GetReturnDay(gomock.Any(), 2).Return(&domain.ReturnDay{ID: 2, Day: 14, FineAmount: 1}, nil)
	m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(1), nil)
	m.issues.EXPECT().CountActive(gomock.Any(), 3, 5).Return(1, nil)
	m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Reissue(context.Background(), 5)
	assert.ErrorIs(t, err, circulation.ErrBorrowLimit)
}

func TestReturn(t *testing.T) {
	service, m := NewMock(t)

	issue := draftIssue()
	issue.State = domain.IssueReissue

	m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
	m.catalog.EXPECT().SetAvailability(gomock.Any(), 1, domain.Available).Return(nil)
	m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	res, err := service.Return(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueReturn, res.State)
	require.NotNil(t, res.ActualReturnDate)
	assert.Equal(t, now, *res.ActualReturnDate)
}

func TestLost(t *testing.T) {
	service, m := NewMock(t)

	issue := draftIssue()
	issue.State = domain.IssueIssued

	m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
	m.invoices.EXPECT().CreateScrap(gomock.Any(), &domain.Scrap{
		BookID:  1,
		IssueID: 5,
		Origin:  "Book lost : BI/00005(Ann)",
	}).Return(nil).Times(1)
	m.catalog.EXPECT().GetBook(gomock.Any(), 1).Return(&domain.Book{ID: 1, Price: 40}, nil)
	m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	res, err := service.Lost(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueLost, res.State)
	assert.Equal(t, 40.0, res.LostPenalty)
}

func TestFine(t *testing.T) {
	tests := []struct {
		name          string
		issue         func() *domain.BookIssue
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Student billed at contact address",
			issue: func() *domain.BookIssue {
				issue := draftIssue()
				issue.State = domain.IssueLost
				issue.Penalty = 15
				return issue
			},
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().GetBook(gomock.Any(), 1).Return(&domain.Book{ID: 1, Price: 40}, nil)
				m.cards.EXPECT().GetStudent(gomock.Any(), 7).Return(&domain.Student{ID: 7, Name: "Ann", ContactAddress: "1 Elm St"}, nil)
				m.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv *domain.Invoice) error {
					assert.Equal(t, "Ann", inv.Partner)
					assert.Equal(t, "1 Elm St", inv.Address)
					assert.Equal(t, "BI/00005", inv.Reference)
					assert.Equal(t, domain.OutInvoice, inv.Type)
					assert.Equal(t, []domain.InvoiceLine{
						{Name: circulation.LostFineLine, PriceUnit: 40},
					}, inv.Lines)
					inv.ID = 9
					return nil
				})
				m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Teacher without home address",
			issue: func() *domain.BookIssue {
				issue := draftIssue()
				issue.State = domain.IssueReturn
				issue.StudentID = nil
				issue.TeacherID = ptr(2)
				return issue
			},
			prepareMock: func(m mocks) {
				m.cards.EXPECT().GetTeacher(gomock.Any(), 2).Return(&domain.Teacher{ID: 2, Name: "Mr. Bell"}, nil)
			},
			expectedError: circulation.ErrMissingAddress,
		},
		{
			name: "Draft can't be fined",
			issue: func() *domain.BookIssue {
				return draftIssue()
			},
			prepareMock:   func(m mocks) {},
			expectedError: circulation.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.issues.EXPECT().Lock(gomock.Any(), 5).Return(tt.issue(), nil)
			tt.prepareMock(m)

			res, err := service.Fine(context.Background(), 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.IssueFine, res.State)
			assert.Equal(t, ptr(9), res.InvoiceID)
		})
	}
}

func TestPay(t *testing.T) {
	service, m := NewMock(t)

	issue := draftIssue()
	issue.State = domain.IssueFine
	issue.InvoiceID = ptr(9)
	issue.Penalty = 15

	m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
	m.invoices.EXPECT().SetInvoiceStatus(gomock.Any(), 9, domain.InvoicePaid).Return(nil)
	m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	res, err := service.Pay(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.IssuePaid, res.State)
	assert.Equal(t, 15.0, res.Penalty)
}

func TestCancelAndDraft(t *testing.T) {
	t.Run("Cancel from any state", func(t *testing.T) {
		service, m := NewMock(t)
		issue := draftIssue()
		issue.State = domain.IssuePaid
		m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
		m.issues.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		res, err := service.Cancel(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, domain.IssueCancel, res.State)
	})

	t.Run("Reset to draft on a full card", func(t *testing.T) {
		service, m := NewMock(t)
		issue := draftIssue()
		issue.State = domain.IssueCancel
		m.issues.EXPECT().Lock(gomock.Any(), 5).Return(issue, nil)
		m.cards.EXPECT().LockCard(gomock.Any(), 3).Return(studentCard(1), nil)
		m.issues.EXPECT().CountActive(gomock.Any(), 3, 5).Return(1, nil)

		_, err := service.Draft(context.Background(), 5)
		assert.ErrorIs(t, err, circulation.ErrBorrowLimit)
	})
}

func TestGet(t *testing.T) {
	service, m := NewMock(t)

	issue := draftIssue()
	issue.State = domain.IssueIssued
	issue.DateIssue = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issue.ReturnDayID = ptr(2)

	m.issues.EXPECT().Get(gomock.Any(), 5).Return(issue, nil)
	m.catalog.EXPECT().GetReturnDay(gomock.Any(), 2).Return(&domain.ReturnDay{ID: 2, Day: 14, FineAmount: 5}, nil)

	res, err := service.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 85.0, res.Penalty)

	m.issues.EXPECT().Get(gomock.Any(), 6).Return(nil, nil)
	_, err = service.Get(context.Background(), 6)
	assert.ErrorIs(t, err, ErrIssueNotFound)
}

func TestInvoice(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Invoice found",
			prepareMock: func(m mocks) {
				m.issues.EXPECT().Get(gomock.Any(), 5).Return(&domain.BookIssue{ID: 5, InvoiceID: ptr(9)}, nil)
				m.invoices.EXPECT().GetInvoice(gomock.Any(), 9).Return(&domain.Invoice{ID: 9}, nil)
			},
		},
		{
			name: "Issue never fined",
			prepareMock: func(m mocks) {
				m.issues.EXPECT().Get(gomock.Any(), 5).Return(&domain.BookIssue{ID: 5}, nil)
			},
			expectedError: ErrInvoiceNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func(m mocks) {
				m.issues.EXPECT().Get(gomock.Any(), 5).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			inv, err := service.Invoice(context.Background(), 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 9, inv.ID)
		})
	}
}
