package catalogrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrAuthorExists     = errors.New("the name of the author must be unique")
	ErrUnknownReference = errors.New("referenced catalog record does not exist")
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreatePriceCategory(ctx context.Context, c *domain.PriceCategory) error {
	query := `
		INSERT INTO price_categories (name, price)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, c.Name, c.Price).Scan(&c.ID); err != nil {
		zap.L().Error("can't save price category", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPriceCategories(ctx context.Context) ([]domain.PriceCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price FROM price_categories ORDER BY id`)
	if err != nil {
		zap.L().Error("can't list price categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.PriceCategory
	for rows.Next() {
		var c domain.PriceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Price); err != nil {
			zap.L().Error("can't scan price category", zap.Error(err))
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *Repository) CreateRack(ctx context.Context, rack *domain.Rack) error {
	query := `
		INSERT INTO racks (name, code, active)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, rack.Name, rack.Code, rack.Active).Scan(&rack.ID); err != nil {
		zap.L().Error("can't save rack", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListRacks(ctx context.Context) ([]domain.Rack, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code, active FROM racks ORDER BY id`)
	if err != nil {
		zap.L().Error("can't list racks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.Rack
	for rows.Next() {
		var rack domain.Rack
		if err := rows.Scan(&rack.ID, &rack.Name, &rack.Code, &rack.Active); err != nil {
			zap.L().Error("can't scan rack", zap.Error(err))
			return nil, err
		}
		res = append(res, rack)
	}
	return res, rows.Err()
}

func (r *Repository) CreateCollection(ctx context.Context, c *domain.Collection) error {
	query := `
		INSERT INTO collections (name, code)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, c.Name, c.Code).Scan(&c.ID); err != nil {
		zap.L().Error("can't save collection", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code FROM collections ORDER BY id`)
	if err != nil {
		zap.L().Error("can't list collections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			zap.L().Error("can't scan collection", zap.Error(err))
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *Repository) CreateReturnDay(ctx context.Context, rd *domain.ReturnDay) error {
	query := `
		INSERT INTO return_days (day, code, fine_amt)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, rd.Day, rd.Code, rd.FineAmount).Scan(&rd.ID); err != nil {
		zap.L().Error("can't save return day policy", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetReturnDay(ctx context.Context, id int) (*domain.ReturnDay, error) {
	var rd domain.ReturnDay
	err := r.db.QueryRow(ctx, `SELECT id, day, code, fine_amt FROM return_days WHERE id = $1`, id).
		Scan(&rd.ID, &rd.Day, &rd.Code, &rd.FineAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get return day policy", zap.Error(err))
		return nil, err
	}
	return &rd, nil
}

func (r *Repository) ListReturnDays(ctx context.Context) ([]domain.ReturnDay, error) {
	rows, err := r.db.Query(ctx, `SELECT id, day, code, fine_amt FROM return_days ORDER BY day`)
	if err != nil {
		zap.L().Error("can't list return day policies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.ReturnDay
	for rows.Next() {
		var rd domain.ReturnDay
		if err := rows.Scan(&rd.ID, &rd.Day, &rd.Code, &rd.FineAmount); err != nil {
			zap.L().Error("can't scan return day policy", zap.Error(err))
			return nil, err
		}
		res = append(res, rd)
	}
	return res, rows.Err()
}

func (r *Repository) CreateAuthor(ctx context.Context, a *domain.Author) error {
	query := `
		INSERT INTO authors (name, born_date, death_date, biography, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, a.Name, a.BornDate, a.DeathDate, a.Biography, a.Note).Scan(&a.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return ErrAuthorExists
		}
		zap.L().Error("can't save author", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, born_date, death_date, biography, note FROM authors ORDER BY name`)
	if err != nil {
		zap.L().Error("can't list authors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BornDate, &a.DeathDate, &a.Biography, &a.Note); err != nil {
			zap.L().Error("can't scan author", zap.Error(err))
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

const bookColumns = `id, name, price, price_category_id, rack_id, collection_id, author_id, availability`

func scanBook(row pgx.Row, b *domain.Book) error {
	return row.Scan(&b.ID, &b.Name, &b.Price, &b.PriceCategoryID, &b.RackID, &b.CollectionID, &b.AuthorID, &b.Availability)
}

func (r *Repository) CreateBook(ctx context.Context, b *domain.Book) error {
	query := `
		INSERT INTO books (name, price, price_category_id, rack_id, collection_id, author_id, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, b.Name, b.Price, b.PriceCategoryID, b.RackID, b.CollectionID, b.AuthorID, b.Availability).Scan(&b.ID)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		zap.L().Error("can't save book", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetBook(ctx context.Context, id int) (*domain.Book, error) {
	var b domain.Book
	err := scanBook(r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get book", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY name`)
	if err != nil {
		zap.L().Error("can't list books", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := scanBook(rows, &b); err != nil {
			zap.L().Error("can't scan book", zap.Error(err))
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func (r *Repository) SetAvailability(ctx context.Context, bookID int, availability domain.Availability) error {
	_, err := r.db.Exec(ctx, `UPDATE books SET availability = $1 WHERE id = $2`, availability, bookID)
	if err != nil {
		zap.L().Error("can't update book availability", zap.Error(err))
		return err
	}
	return nil
}
