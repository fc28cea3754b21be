// Package circulation holds the checkout rules of the library: the issue
// state machine, the borrow limit, return-date and fine arithmetic, and the
// card autofill. Everything here is a pure function over loaded entities;
// persistence lives in the repositories.
package circulation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/GlebRadaev/library/internal/domain"
)

var (
	ErrBorrowLimit       = errors.New("book issue limit is over on this card")
	ErrOutstandingFine   = errors.New("you can not request for a book until the fine is paid")
	ErrMissingAddress    = errors.New("borrower must have a home address")
	ErrInvalidTransition = errors.New("action not allowed in current state")
)

const (
	LostFineLine    = "Book Lost Fine"
	LatePenaltyLine = "Late Return Penalty"

	day = 24 * time.Hour
)

var transitions = map[domain.IssueState][]domain.IssueState{
	domain.IssueIssued:  {domain.IssueDraft},
	domain.IssueReissue: {domain.IssueIssued, domain.IssueReissue},
	domain.IssueReturn:  {domain.IssueIssued, domain.IssueReissue},
	domain.IssueLost:    {domain.IssueIssued, domain.IssueReissue},
	domain.IssueFine:    {domain.IssueIssued, domain.IssueReissue, domain.IssueReturn, domain.IssueLost},
	domain.IssuePaid:    {domain.IssueFine},
	domain.IssueDraft:   {domain.IssueDraft, domain.IssueCancel},
}

// CheckTransition reports whether an issue in state from may move to state
// to. Cancelling is always allowed.
func CheckTransition(from, to domain.IssueState) error {
	if to == domain.IssueCancel {
		return nil
	}
	for _, s := range transitions[to] {
		if s == from {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// IsActive reports whether the issue counts against the card's borrow limit.
func IsActive(state domain.IssueState) bool {
	return state == domain.IssueIssued || state == domain.IssueReissue
}

func penaltyFrozen(state domain.IssueState) bool {
	return state == domain.IssueFine || state == domain.IssuePaid || state == domain.IssueCancel
}

// CheckBorrowLimit applies the card capacity rule. active is the number of
// issues on the card in issue/reissue once the mutation is written; when the
// mutation itself targets one of those states its own row is discounted.
func CheckBorrowLimit(limit, active int, target domain.IssueState) error {
	count := active
	if IsActive(target) {
		count--
	}
	if count >= limit {
		return ErrBorrowLimit
	}
	return nil
}

// OutstandingFines fails when any of the card's issues is still fined.
func OutstandingFines(fined []domain.BookIssue) error {
	if len(fined) == 0 {
		return nil
	}
	codes := make([]string, 0, len(fined))
	for _, f := range fined {
		codes = append(codes, f.IssueCode)
	}
	return fmt.Errorf("%w for book issues %s", ErrOutstandingFine, strings.Join(codes, ", "))
}

// ReturnDate is date_issue plus the policy's loan period, or nil when the
// issue has no policy.
func ReturnDate(dateIssue time.Time, policy *domain.ReturnDay) *time.Time {
	if dateIssue.IsZero() || policy == nil {
		return nil
	}
	ret := dateIssue.Add(time.Duration(policy.Day) * day)
	return &ret
}

// Penalty is the late fee at instant now: whole days overdue, at least one,
// times the daily fine. A stamped actual return date stops the clock.
func Penalty(dateReturn, actualReturn *time.Time, fineAmount float64, now time.Time) float64 {
	if dateReturn == nil {
		return 0
	}
	ref := now
	if actualReturn != nil {
		ref = *actualReturn
	}
	if !ref.After(*dateReturn) {
		return 0
	}
	days := math.Floor(ref.Sub(*dateReturn).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days * fineAmount
}

// LostPenalty is the catalog price of a lost book, zero otherwise.
func LostPenalty(state domain.IssueState, price float64) float64 {
	if state == domain.IssueLost {
		return price
	}
	return 0
}

// Recompute refreshes the derived fields of an issue. policy may be nil.
func Recompute(issue *domain.BookIssue, policy *domain.ReturnDay, bookPrice float64, now time.Time) {
	issue.DateReturn = ReturnDate(issue.DateIssue, policy)
	if !penaltyFrozen(issue.State) {
		issue.Penalty = 0
		if policy != nil {
			issue.Penalty = Penalty(issue.DateReturn, issue.ActualReturnDate, policy.FineAmount, now)
		}
	}
	if issue.State == domain.IssueLost {
		issue.LostPenalty = LostPenalty(issue.State, bookPrice)
	}
}

// FillFromCard copies the card holder onto an issue.
func FillFromCard(issue *domain.BookIssue, card domain.Card) {
	issue.CardID = card.ID
	issue.User = holderTitle(card.User)
	issue.HolderName = card.HolderName
	if card.User == domain.HolderStudent {
		issue.StudentID = card.StudentID
		issue.Standard = card.Standard
		issue.RollNo = card.RollNo
		issue.TeacherID = nil
		return
	}
	issue.TeacherID = card.TeacherID
	issue.StudentID = nil
	issue.Standard = ""
	issue.RollNo = 0
}

func holderTitle(t domain.HolderType) string {
	switch t {
	case domain.HolderStudent:
		return "Student"
	case domain.HolderTeacher:
		return "Teacher"
	}
	return ""
}

// FillFromStudent copies roll number and standard of a student onto a card.
func FillFromStudent(card *domain.Card, student domain.Student) {
	card.StudentID = &student.ID
	card.Standard = student.Standard
	card.RollNo = student.RollNo
	card.HolderName = student.Name
}

// FineLines builds the invoice lines for an issue; zero amounts are skipped.
func FineLines(issue domain.BookIssue) []domain.InvoiceLine {
	var lines []domain.InvoiceLine
	if issue.LostPenalty != 0 {
		lines = append(lines, domain.InvoiceLine{Name: LostFineLine, PriceUnit: issue.LostPenalty})
	}
	if issue.Penalty != 0 {
		lines = append(lines, domain.InvoiceLine{Name: LatePenaltyLine, PriceUnit: issue.Penalty})
	}
	return lines
}

// LostOrigin is the origin text of the write-off created for a lost book.
func LostOrigin(issue domain.BookIssue) string {
	origin := "Book lost : " + issue.IssueCode
	if issue.StudentID != nil && issue.HolderName != "" {
		origin += "(" + issue.HolderName + ")"
	}
	return origin
}

// BookName derives the display name of a request from its type.
func BookName(reqType domain.RequestType, book *domain.Book, freeform string) string {
	if reqType == domain.RequestExisting {
		if book == nil {
			return ""
		}
		return book.Name
	}
	return freeform
}
