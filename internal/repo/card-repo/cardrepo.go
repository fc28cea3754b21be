package cardrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrCardCodeTaken = errors.New("card code already exists")
	ErrUnknownHolder = errors.New("card holder does not exist")
)

// Repository stores library members and their cards.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateStudent(ctx context.Context, s *domain.Student) error {
	query := `
		INSERT INTO students (name, roll_no, standard, contact_address)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, s.Name, s.RollNo, s.Standard, s.ContactAddress).Scan(&s.ID); err != nil {
		zap.L().Error("can't save student", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetStudent(ctx context.Context, id int) (*domain.Student, error) {
	query := `
		SELECT id, name, roll_no, standard, contact_address
		FROM students
		WHERE id = $1
	`
	var s domain.Student
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.RollNo, &s.Standard, &s.ContactAddress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get student", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) CreateTeacher(ctx context.Context, t *domain.Teacher) error {
	query := `
		INSERT INTO teachers (name, home_address)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, t.Name, t.HomeAddress).Scan(&t.ID); err != nil {
		zap.L().Error("can't save teacher", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTeacher(ctx context.Context, id int) (*domain.Teacher, error) {
	query := `
		SELECT id, name, home_address
		FROM teachers
		WHERE id = $1
	`
	var t domain.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.HomeAddress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get teacher", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// NextCardSeq reserves the next value of the card number sequence.
func (r *Repository) NextCardSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('card_code_seq')`).Scan(&seq); err != nil {
		zap.L().Error("can't reserve card number", zap.Error(err))
		return 0, err
	}
	return seq, nil
}

const cardColumns = `id, code, book_limit, holder_type, student_id, teacher_id, standard, roll_no, holder_name`

func scanCard(row pgx.Row, c *domain.Card) error {
	return row.Scan(&c.ID, &c.Code, &c.BookLimit, &c.User, &c.StudentID, &c.TeacherID, &c.Standard, &c.RollNo, &c.HolderName)
}

func (r *Repository) CreateCard(ctx context.Context, c *domain.Card) error {
	query := `
		INSERT INTO cards (code, book_limit, holder_type, student_id, teacher_id, standard, roll_no, holder_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, c.Code, c.BookLimit, c.User, c.StudentID, c.TeacherID, c.Standard, c.RollNo, c.HolderName).Scan(&c.ID)
	if err != nil {
		switch {
		case pg.IsUniqueViolation(err):
			return ErrCardCodeTaken
		case pg.IsForeignKeyViolation(err):
			return ErrUnknownHolder
		}
		zap.L().Error("can't save card", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) getCard(ctx context.Context, query string, arg any) (*domain.Card, error) {
	var c domain.Card
	if err := scanCard(r.db.QueryRow(ctx, query, arg), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get card", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) GetCard(ctx context.Context, id int) (*domain.Card, error) {
	return r.getCard(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)
}

func (r *Repository) GetCardByCode(ctx context.Context, code string) (*domain.Card, error) {
	return r.getCard(ctx, `SELECT `+cardColumns+` FROM cards WHERE code = $1`, code)
}

// LockCard loads the card and holds its row lock until the surrounding
// transaction ends. Every issue mutation that can change the number of
// active loans takes this lock first.
func (r *Repository) LockCard(ctx context.Context, id int) (*domain.Card, error) {
	return r.getCard(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) ListCards(ctx context.Context) ([]domain.Card, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cardColumns+` FROM cards ORDER BY id`)
	if err != nil {
		zap.L().Error("can't list cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := scanCard(rows, &c); err != nil {
			zap.L().Error("can't scan card", zap.Error(err))
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
