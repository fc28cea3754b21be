package invoicerepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository keeps fine invoices and book write-offs.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateInvoice stores the invoice header and its lines. Callers run it
// inside a transaction so a header never exists without its lines.
func (r *Repository) CreateInvoice(ctx context.Context, inv *domain.Invoice) error {
	if inv.UID == "" {
		inv.UID = uuid.NewString()
	}
	query := `
		INSERT INTO invoices (invoice_uid, issue_id, invoice_type, partner, address, reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, inv.UID, inv.IssueID, inv.Type, inv.Partner, inv.Address, inv.Reference, inv.Status).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Error(err))
		return err
	}

	lineQuery := `
		INSERT INTO invoice_lines (invoice_id, name, price_unit)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	for i := range inv.Lines {
		line := &inv.Lines[i]
		line.InvoiceID = inv.ID
		if err := r.db.QueryRow(ctx, lineQuery, inv.ID, line.Name, line.PriceUnit).Scan(&line.ID); err != nil {
			zap.L().Error("can't save invoice line", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) GetInvoice(ctx context.Context, id int) (*domain.Invoice, error) {
	query := `
		SELECT id, invoice_uid, issue_id, invoice_type, partner, address, reference, status, created_at
		FROM invoices
		WHERE id = $1
	`
	var inv domain.Invoice
	err := r.db.QueryRow(ctx, query, id).
		Scan(&inv.ID, &inv.UID, &inv.IssueID, &inv.Type, &inv.Partner, &inv.Address, &inv.Reference, &inv.Status, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get invoice", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, invoice_id, name, price_unit FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`, id)
	if err != nil {
		zap.L().Error("can't get invoice lines", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.Name, &l.PriceUnit); err != nil {
			zap.L().Error("can't scan invoice line", zap.Error(err))
			return nil, err
		}
		inv.Lines = append(inv.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) SetInvoiceStatus(ctx context.Context, id int, status domain.InvoiceStatus) error {
	if _, err := r.db.Exec(ctx, `UPDATE invoices SET status = $1 WHERE id = $2`, status, id); err != nil {
		zap.L().Error("can't update invoice status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateScrap(ctx context.Context, s *domain.Scrap) error {
	query := `
		INSERT INTO scraps (book_id, issue_id, origin)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.db.QueryRow(ctx, query, s.BookID, s.IssueID, s.Origin).Scan(&s.ID, &s.CreatedAt); err != nil {
		zap.L().Error("can't save scrap", zap.Error(err))
		return err
	}
	return nil
}
