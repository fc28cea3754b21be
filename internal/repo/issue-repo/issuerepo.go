package issuerepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrUnknownReference = errors.New("book, card or return policy does not exist")

var issueColumns = []string{
	"id", "issue_code", "book_id", "card_id", "return_day_id",
	"holder_type", "student_id", "teacher_id", "holder_name", "standard", "roll_no",
	"date_issue", "date_return", "actual_return_date",
	"penalty", "lost_penalty", "invoice_id", "state",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanIssue(row pgx.Row, i *domain.BookIssue) error {
	return row.Scan(
		&i.ID, &i.IssueCode, &i.BookID, &i.CardID, &i.ReturnDayID,
		&i.User, &i.StudentID, &i.TeacherID, &i.HolderName, &i.Standard, &i.RollNo,
		&i.DateIssue, &i.DateReturn, &i.ActualReturnDate,
		&i.Penalty, &i.LostPenalty, &i.InvoiceID, &i.State,
	)
}

// Create inserts a new issue; the database assigns id and issue code.
func (r *Repository) Create(ctx context.Context, i *domain.BookIssue) error {
	query := `
		INSERT INTO book_issues (
			book_id, card_id, return_day_id, holder_type, student_id, teacher_id,
			holder_name, standard, roll_no, date_issue, date_return, penalty, lost_penalty, state
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, issue_code
	`
	err := r.db.QueryRow(ctx, query,
		i.BookID, i.CardID, i.ReturnDayID, i.User, i.StudentID, i.TeacherID,
		i.HolderName, i.Standard, i.RollNo, i.DateIssue, i.DateReturn, i.Penalty, i.LostPenalty, i.State,
	).Scan(&i.ID, &i.IssueCode)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		zap.L().Error("can't save book issue", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) get(ctx context.Context, id int, forUpdate bool) (*domain.BookIssue, error) {
	q := sq.Select(issueColumns...).
		From("book_issues").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var i domain.BookIssue
	if err := scanIssue(r.db.QueryRow(ctx, query, args...), &i); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get book issue", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &i, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.BookIssue, error) {
	return r.get(ctx, id, false)
}

// Lock loads the issue and holds its row lock for the rest of the transaction.
func (r *Repository) Lock(ctx context.Context, id int) (*domain.BookIssue, error) {
	return r.get(ctx, id, true)
}

func (r *Repository) List(ctx context.Context, filter domain.IssueFilter) ([]domain.BookIssue, error) {
	q := sq.Select(issueColumns...).
		From("book_issues").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)
	if filter.CardID != nil {
		q = q.Where(sq.Eq{"card_id": *filter.CardID})
	}
	if filter.State != nil {
		q = q.Where(sq.Eq{"state": *filter.State})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list book issues", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.BookIssue
	for rows.Next() {
		var i domain.BookIssue
		if err := scanIssue(rows, &i); err != nil {
			zap.L().Error("can't scan book issue", zap.Error(err))
			return nil, err
		}
		res = append(res, i)
	}
	return res, rows.Err()
}

func (r *Repository) Update(ctx context.Context, i *domain.BookIssue) error {
	query := `
		UPDATE book_issues
		SET book_id = $1, card_id = $2, return_day_id = $3, holder_type = $4,
			student_id = $5, teacher_id = $6, holder_name = $7, standard = $8, roll_no = $9,
			date_issue = $10, date_return = $11, actual_return_date = $12,
			penalty = $13, lost_penalty = $14, invoice_id = $15, state = $16
		WHERE id = $17
	`
	_, err := r.db.Exec(ctx, query,
		i.BookID, i.CardID, i.ReturnDayID, i.User,
		i.StudentID, i.TeacherID, i.HolderName, i.Standard, i.RollNo,
		i.DateIssue, i.DateReturn, i.ActualReturnDate,
		i.Penalty, i.LostPenalty, i.InvoiceID, i.State,
		i.ID,
	)
	if err != nil {
		zap.L().Error("can't update book issue", zap.Int("id", i.ID), zap.Error(err))
		return err
	}
	return nil
}

// CountActive counts the card's issues in issue or reissue, leaving out
// excludeID.
func (r *Repository) CountActive(ctx context.Context, cardID, excludeID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM book_issues
		WHERE card_id = $1 AND id <> $2 AND state IN ('issue', 'reissue')
	`
	var count int
	if err := r.db.QueryRow(ctx, query, cardID, excludeID).Scan(&count); err != nil {
		zap.L().Error("can't count active issues", zap.Int("card_id", cardID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindPenaltyCandidates returns issues still out (or lost) whose return date
// has passed, oldest first.
func (r *Repository) FindPenaltyCandidates(ctx context.Context, now time.Time, limit uint32) ([]domain.PenaltyCandidate, error) {
	query := `
		SELECT bi.id, bi.issue_code, bi.date_return, bi.actual_return_date, bi.penalty, rd.fine_amt
		FROM book_issues bi
		JOIN return_days rd ON rd.id = bi.return_day_id
		WHERE bi.state IN ('issue', 'reissue', 'lost') AND bi.date_return < $1
		ORDER BY bi.date_return
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't find overdue issues", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.PenaltyCandidate
	for rows.Next() {
		var c domain.PenaltyCandidate
		if err := rows.Scan(&c.IssueID, &c.IssueCode, &c.DateReturn, &c.ActualReturnDate, &c.Penalty, &c.FineAmount); err != nil {
			zap.L().Error("can't scan overdue issue", zap.Error(err))
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// UpdatePenalty stores a recomputed late fee. Issues that moved to a state
// with a frozen penalty in the meantime are left alone.
func (r *Repository) UpdatePenalty(ctx context.Context, issueID int, penalty float64) error {
	query := `
		UPDATE book_issues
		SET penalty = $1
		WHERE id = $2 AND state IN ('issue', 'reissue', 'lost')
	`
	if _, err := r.db.Exec(ctx, query, penalty, issueID); err != nil {
		zap.L().Error("can't update penalty", zap.Int("id", issueID), zap.Error(err))
		return err
	}
	return nil
}
