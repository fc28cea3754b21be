package circulation

import (
	"testing"
	"time"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestReturnDate(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dateIssue time.Time
		policy    *domain.ReturnDay
		expected  *time.Time
	}{
		{
			name:      "Fourteen day policy",
			dateIssue: issued,
			policy:    &domain.ReturnDay{Day: 14, FineAmount: 5},
			expected:  ptr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:      "No policy",
			dateIssue: issued,
			policy:    nil,
			expected:  nil,
		},
		{
			name:      "No issue date",
			dateIssue: time.Time{},
			policy:    &domain.ReturnDay{Day: 14},
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReturnDate(tt.dateIssue, tt.policy))
		})
	}
}

func TestPenalty(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		dateReturn   *time.Time
		actualReturn *time.Time
		fine         float64
		expected     float64
	}{
		{
			name:       "Three days overdue",
			dateReturn: ptr(now.Add(-3 * 24 * time.Hour)),
			fine:       5.0,
			expected:   15.0,
		},
		{
			name:       "Due in the future",
			dateReturn: ptr(now.Add(24 * time.Hour)),
			fine:       5.0,
			expected:   0,
		},
		{
			name:       "Less than a day overdue counts as one",
			dateReturn: ptr(now.Add(-2 * time.Hour)),
			fine:       5.0,
			expected:   5.0,
		},
		{
			name:       "Partial days are floored",
			dateReturn: ptr(now.Add(-(2*24 + 23) * time.Hour)),
			fine:       2.5,
			expected:   5.0,
		},
		{
			name:         "Actual return date stops the clock",
			dateReturn:   ptr(now.Add(-10 * 24 * time.Hour)),
			actualReturn: ptr(now.Add(-8 * 24 * time.Hour)),
			fine:         1.0,
			expected:     2.0,
		},
		{
			name:         "Returned on time",
			dateReturn:   ptr(now.Add(-10 * 24 * time.Hour)),
			actualReturn: ptr(now.Add(-11 * 24 * time.Hour)),
			fine:         1.0,
			expected:     0,
		},
		{
			name:     "No return date",
			fine:     5.0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Penalty(tt.dateReturn, tt.actualReturn, tt.fine, now))
		})
	}
}

func TestCheckBorrowLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		active  int
		target  domain.IssueState
		wantErr bool
	}{
		{name: "Issue below limit", limit: 2, active: 2, target: domain.IssueIssued},
		{name: "Issue over limit", limit: 2, active: 3, target: domain.IssueIssued, wantErr: true},
		{name: "Reissue at limit", limit: 1, active: 1, target: domain.IssueReissue},
		{name: "Draft below limit", limit: 2, active: 1, target: domain.IssueDraft},
		{name: "Draft at limit", limit: 2, active: 2, target: domain.IssueDraft, wantErr: true},
		{name: "Zero limit", limit: 0, active: 1, target: domain.IssueIssued, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBorrowLimit(tt.limit, tt.active, tt.target)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBorrowLimit)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		from    domain.IssueState
		to      domain.IssueState
		allowed bool
	}{
		{domain.IssueDraft, domain.IssueIssued, true},
		{domain.IssueReturn, domain.IssueIssued, false},
		{domain.IssueIssued, domain.IssueReissue, true},
		{domain.IssueDraft, domain.IssueReissue, false},
		{domain.IssueReissue, domain.IssueReturn, true},
		{domain.IssueIssued, domain.IssueLost, true},
		{domain.IssueLost, domain.IssueFine, true},
		{domain.IssueDraft, domain.IssueFine, false},
		{domain.IssueFine, domain.IssuePaid, true},
		{domain.IssueReturn, domain.IssuePaid, false},
		{domain.IssuePaid, domain.IssueCancel, true},
		{domain.IssueCancel, domain.IssueDraft, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CheckTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestOutstandingFines(t *testing.T) {
	require.NoError(t, OutstandingFines(nil))

	err := OutstandingFines([]domain.BookIssue{{IssueCode: "BI/00001"}, {IssueCode: "BI/00004"}})
	require.ErrorIs(t, err, ErrOutstandingFine)
	assert.Contains(t, err.Error(), "BI/00001, BI/00004")
}

func TestRecompute(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	policy := &domain.ReturnDay{Day: 14, FineAmount: 5}

	t.Run("Overdue issue accrues", func(t *testing.T) {
		issue := domain.BookIssue{DateIssue: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), State: domain.IssueIssued}
		Recompute(&issue, policy, 30, now)

		require.NotNil(t, issue.DateReturn)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *issue.DateReturn)
		assert.Equal(t, 85.0, issue.Penalty)
		assert.Zero(t, issue.LostPenalty)
	})

	t.Run("Fined issue keeps its penalty", func(t *testing.T) {
		issue := domain.BookIssue{DateIssue: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), State: domain.IssueFine, Penalty: 10}
		Recompute(&issue, policy, 30, now)

		assert.Equal(t, 10.0, issue.Penalty)
	})

	t.Run("Lost issue takes the book price", func(t *testing.T) {
		issue := domain.BookIssue{DateIssue: now, State: domain.IssueLost}
		Recompute(&issue, policy, 30, now)

		assert.Equal(t, 30.0, issue.LostPenalty)
		assert.Zero(t, issue.Penalty)
	})

	t.Run("Missing policy skips penalty", func(t *testing.T) {
		issue := domain.BookIssue{DateIssue: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), State: domain.IssueIssued}
		Recompute(&issue, nil, 30, now)

		assert.Nil(t, issue.DateReturn)
		assert.Zero(t, issue.Penalty)
	})
}

func TestFillFromCard(t *testing.T) {
	t.Run("Student card", func(t *testing.T) {
		card := domain.Card{ID: 3, User: domain.HolderStudent, StudentID: ptr(7), Standard: "5A", RollNo: 12, HolderName: "Ann"}
		var issue domain.BookIssue
		FillFromCard(&issue, card)

		assert.Equal(t, domain.BookIssue{
			CardID:     3,
			User:       "Student",
			StudentID:  ptr(7),
			Standard:   "5A",
			RollNo:     12,
			HolderName: "Ann",
		}, issue)
	})

	t.Run("Teacher card", func(t *testing.T) {
		card := domain.Card{ID: 4, User: domain.HolderTeacher, TeacherID: ptr(2), HolderName: "Mr. Bell"}
		issue := domain.BookIssue{Standard: "stale", RollNo: 1}
		FillFromCard(&issue, card)

		assert.Equal(t, domain.BookIssue{
			CardID:     4,
			User:       "Teacher",
			TeacherID:  ptr(2),
			HolderName: "Mr. Bell",
		}, issue)
	})
}

func TestFineLines(t *testing.T) {
	assert.Empty(t, FineLines(domain.BookIssue{}))
	assert.Equal(t, []domain.InvoiceLine{
		{Name: LostFineLine, PriceUnit: 40},
		{Name: LatePenaltyLine, PriceUnit: 15},
	}, FineLines(domain.BookIssue{LostPenalty: 40, Penalty: 15}))
	assert.Equal(t, []domain.InvoiceLine{
		{Name: LatePenaltyLine, PriceUnit: 15},
	}, FineLines(domain.BookIssue{Penalty: 15}))
}

func TestLostOrigin(t *testing.T) {
	assert.Equal(t, "Book lost : BI/00003(Ann)",
		LostOrigin(domain.BookIssue{IssueCode: "BI/00003", StudentID: ptr(1), HolderName: "Ann"}))
	assert.Equal(t, "Book lost : BI/00003",
		LostOrigin(domain.BookIssue{IssueCode: "BI/00003", TeacherID: ptr(1), HolderName: "Mr. Bell"}))
}

func TestBookName(t *testing.T) {
	assert.Equal(t, "Dune", BookName(domain.RequestExisting, &domain.Book{Name: "Dune"}, "ignored"))
	assert.Equal(t, "", BookName(domain.RequestExisting, nil, "ignored"))
	assert.Equal(t, "Hyperion", BookName(domain.RequestNew, nil, "Hyperion"))
}
