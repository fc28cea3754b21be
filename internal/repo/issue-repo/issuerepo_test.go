package issuerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectIssue = "SELECT id, issue_code, book_id, card_id, return_day_id, holder_type, student_id, teacher_id, holder_name, standard, roll_no, date_issue, date_return, actual_return_date, penalty, lost_penalty, invoice_id, state FROM book_issues"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func ptr[T any](v T) *T {
	return &v
}

var issued = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func issueRows() *pgxmock.Rows {
	return pgxmock.NewRows(issueColumns)
}

func addIssue(rows *pgxmock.Rows, id int, code string, state domain.IssueState) *pgxmock.Rows {
	return rows.AddRow(
		id, code, 1, 3, ptr(2),
		"Student", ptr(7), (*int)(nil), "Ann", "5A", 12,
		issued, ptr(issued.Add(14*24*time.Hour)), (*time.Time)(nil),
		0.0, 0.0, (*int)(nil), state,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	insertArgs := []any{
		1, 3, (*int)(nil), "", (*int)(nil), (*int)(nil),
		"", "", 0, issued, (*time.Time)(nil), 0.0, 0.0, domain.IssueDraft,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Issue created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO book_issues")).
					WithArgs(insertArgs...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "issue_code"}).AddRow(5, "BI/00005"))
			},
		},
		{
			name: "Unknown book",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO book_issues")).
					WithArgs(insertArgs...).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			expectErr: ErrUnknownReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			issue := &domain.BookIssue{BookID: 1, CardID: 3, DateIssue: issued, State: domain.IssueDraft}
			err := repo.Create(context.Background(), issue)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, issue.ID)
			assert.Equal(t, "BI/00005", issue.IssueCode)
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Issue found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectIssue + " WHERE id = $1")).
					WithArgs(5).
					WillReturnRows(addIssue(issueRows(), 5, "BI/00005", domain.IssueIssued))
			},
		},
		{
			name: "Issue missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectIssue + " WHERE id = $1")).
					WithArgs(5).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectIssue + " WHERE id = $1")).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			issue, err := repo.Get(context.Background(), 5)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, issue)
				return
			}
			require.NotNil(t, issue)
			assert.Equal(t, "BI/00005", issue.IssueCode)
			assert.Equal(t, domain.IssueIssued, issue.State)
			assert.Equal(t, ptr(7), issue.StudentID)
			assert.Nil(t, issue.TeacherID)
			assert.Equal(t, issued.Add(14*24*time.Hour), *issue.DateReturn)
		})
	}
}

func TestRepository_Lock(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectIssue + " WHERE id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(addIssue(issueRows(), 5, "BI/00005", domain.IssueDraft))

	issue, err := repo.Lock(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueDraft, issue.State)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Filter by card and state", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(selectIssue + " WHERE card_id = $1 AND state = $2 ORDER BY id")).
			WithArgs(3, domain.IssueFine).
			WillReturnRows(addIssue(addIssue(issueRows(), 1, "BI/00001", domain.IssueFine), 4, "BI/00004", domain.IssueFine))

		state := domain.IssueFine
		issues, err := repo.List(context.Background(), domain.IssueFilter{CardID: ptr(3), State: &state})
		require.NoError(t, err)
		require.Len(t, issues, 2)
		assert.Equal(t, "BI/00004", issues[1].IssueCode)
	})

	t.Run("No filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(selectIssue + " ORDER BY id")).
			WillReturnRows(issueRows())

		issues, err := repo.List(context.Background(), domain.IssueFilter{})
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(selectIssue)).
			WillReturnError(errors.New("database error"))

		_, err := repo.List(context.Background(), domain.IssueFilter{})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	issue := &domain.BookIssue{
		ID:          5,
		BookID:      1,
		CardID:      3,
		ReturnDayID: ptr(2),
		User:        "Student",
		StudentID:   ptr(7),
		HolderName:  "Ann",
		DateIssue:   issued,
		Penalty:     15,
		InvoiceID:   ptr(9),
		State:       domain.IssueFine,
	}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE book_issues SET book_id = $1")).
		WithArgs(
			1, 3, ptr(2), "Student",
			ptr(7), (*int)(nil), "Ann", "", 0,
			issued, (*time.Time)(nil), (*time.Time)(nil),
			15.0, 0.0, ptr(9), domain.IssueFine,
			5,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Update(context.Background(), issue))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountActive(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM book_issues WHERE card_id = $1 AND id <> $2 AND state IN ('issue', 'reissue')")).
		WithArgs(3, 5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActive(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_FindPenaltyCandidates(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	due := issued.Add(14 * 24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM book_issues bi JOIN return_days rd ON rd.id = bi.return_day_id")).
		WithArgs(now, uint32(100)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "issue_code", "date_return", "actual_return_date", "penalty", "fine_amt"}).
			AddRow(5, "BI/00005", &due, (*time.Time)(nil), 10.0, 5.0))

	res, err := repo.FindPenaltyCandidates(context.Background(), now, 100)
	require.NoError(t, err)
	assert.Equal(t, []domain.PenaltyCandidate{
		{IssueID: 5, IssueCode: "BI/00005", DateReturn: &due, Penalty: 10, FineAmount: 5},
	}, res)
}

func TestRepository_UpdatePenalty(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE book_issues SET penalty = $1 WHERE id = $2 AND state IN ('issue', 'reissue', 'lost')")).
		WithArgs(85.0, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdatePenalty(context.Background(), 5, 85))
}
