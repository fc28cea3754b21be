package requestrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrUnknownReference = errors.New("card or book does not exist")

var requestColumns = []string{"id", "req_id", "card_id", "request_type", "book_id", "new_book_name", "book_name", "issue_id", "state"}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRequest(row pgx.Row, r *domain.BookRequest) error {
	return row.Scan(&r.ID, &r.ReqID, &r.CardID, &r.Type, &r.BookID, &r.NewBookName, &r.BookName, &r.IssueID, &r.State)
}

func (r *Repository) Create(ctx context.Context, req *domain.BookRequest) error {
	query := `
		INSERT INTO book_requests (card_id, request_type, book_id, new_book_name, book_name, state)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, req_id
	`
	err := r.db.QueryRow(ctx, query, req.CardID, req.Type, req.BookID, req.NewBookName, req.BookName, req.State).
		Scan(&req.ID, &req.ReqID)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		zap.L().Error("can't save book request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) get(ctx context.Context, id int, forUpdate bool) (*domain.BookRequest, error) {
	q := sq.Select(requestColumns...).
		From("book_requests").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var req domain.BookRequest
	if err := scanRequest(r.db.QueryRow(ctx, query, args...), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get book request", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.BookRequest, error) {
	return r.get(ctx, id, false)
}

// Lock loads the request under a row lock, which serializes concurrent
// confirmations of the same request.
func (r *Repository) Lock(ctx context.Context, id int) (*domain.BookRequest, error) {
	return r.get(ctx, id, true)
}

func (r *Repository) List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookRequest, error) {
	q := sq.Select(requestColumns...).
		From("book_requests").
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
		zap.L().Error("can't list book requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.BookRequest
	for rows.Next() {
		var req domain.BookRequest
		if err := scanRequest(rows, &req); err != nil {
			zap.L().Error("can't scan book request", zap.Error(err))
			return nil, err
		}
		res = append(res, req)
	}
	return res, rows.Err()
}

func (r *Repository) Update(ctx context.Context, req *domain.BookRequest) error {
	query := `
		UPDATE book_requests
		SET card_id = $1, request_type = $2, book_id = $3, new_book_name = $4,
			book_name = $5, issue_id = $6, state = $7
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, req.CardID, req.Type, req.BookID, req.NewBookName, req.BookName, req.IssueID, req.State, req.ID)
	if err != nil {
		zap.L().Error("can't update book request", zap.Int("id", req.ID), zap.Error(err))
		return err
	}
	return nil
}
