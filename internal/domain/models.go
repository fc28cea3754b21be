package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type PriceCategory struct {
	ID    int     `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
}

type Rack struct {
	ID     int    `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Code   string `db:"code" json:"code"`
	Active bool   `db:"active" json:"active"`
}

type Collection struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Code string `db:"code" json:"code"`
}

// ReturnDay is a loan policy: how many days a book may be kept and the
// fine charged per day once that period is over.
type ReturnDay struct {
	ID         int     `db:"id" json:"id"`
	Day        int     `db:"day" json:"day"`
	Code       string  `db:"code" json:"code"`
	FineAmount float64 `db:"fine_amt" json:"fine_amt"`
}

type Author struct {
	ID        int        `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	BornDate  *time.Time `db:"born_date" json:"born_date,omitempty"`
	DeathDate *time.Time `db:"death_date" json:"death_date,omitempty"`
	Biography string     `db:"biography" json:"biography,omitempty"`
	Note      string     `db:"note" json:"note,omitempty"`
}

type Availability string

const (
	Available    Availability = "available"
	NotAvailable Availability = "notavailable"
)

type Book struct {
	ID              int          `db:"id" json:"id"`
	Name            string       `db:"name" json:"name"`
	Price           float64      `db:"price" json:"price"`
	PriceCategoryID *int         `db:"price_category_id" json:"price_category_id,omitempty"`
	RackID          *int         `db:"rack_id" json:"rack_id,omitempty"`
	CollectionID    *int         `db:"collection_id" json:"collection_id,omitempty"`
	AuthorID        *int         `db:"author_id" json:"author_id,omitempty"`
	Availability    Availability `db:"availability" json:"availability"`
}

type Student struct {
	ID             int    `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	RollNo         int    `db:"roll_no" json:"roll_no"`
	Standard       string `db:"standard" json:"standard"`
	ContactAddress string `db:"contact_address" json:"contact_address"`
}

type Teacher struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	HomeAddress string `db:"home_address" json:"home_address"`
}

type HolderType string

const (
	HolderStudent HolderType = "student"
	HolderTeacher HolderType = "teacher"
)

type Card struct {
	ID         int        `db:"id"`
	Code       string     `db:"code"`
	BookLimit  int        `db:"book_limit"`
	User       HolderType `db:"holder_type"`
	StudentID  *int       `db:"student_id"`
	TeacherID  *int       `db:"teacher_id"`
	Standard   string     `db:"standard"`
	RollNo     int        `db:"roll_no"`
	HolderName string     `db:"holder_name"`
}

type IssueState string

const (
	IssueDraft   IssueState = "draft"
	IssueIssued  IssueState = "issue"
	IssueReissue IssueState = "reissue"
	IssueCancel  IssueState = "cancel"
	IssueReturn  IssueState = "return"
	IssueLost    IssueState = "lost"
	IssueFine    IssueState = "fine"
	IssuePaid    IssueState = "paid"
)

type BookIssue struct {
	ID               int        `db:"id"`
	IssueCode        string     `db:"issue_code"`
	BookID           int        `db:"book_id"`
	CardID           int        `db:"card_id"`
	ReturnDayID      *int       `db:"return_day_id"`
	User             string     `db:"holder_type"`
	StudentID        *int       `db:"student_id"`
	TeacherID        *int       `db:"teacher_id"`
	HolderName       string     `db:"holder_name"`
	Standard         string     `db:"standard"`
	RollNo           int        `db:"roll_no"`
	DateIssue        time.Time  `db:"date_issue"`
	DateReturn       *time.Time `db:"date_return"`
	ActualReturnDate *time.Time `db:"actual_return_date"`
	Penalty          float64    `db:"penalty"`
	LostPenalty      float64    `db:"lost_penalty"`
	InvoiceID        *int       `db:"invoice_id"`
	State            IssueState `db:"state"`
}

// PenaltyCandidate is the slice of an overdue issue the penalty sweeper
// needs to recompute the late fee.
type PenaltyCandidate struct {
	IssueID          int        `db:"id"`
	IssueCode        string     `db:"issue_code"`
	DateReturn       *time.Time `db:"date_return"`
	ActualReturnDate *time.Time `db:"actual_return_date"`
	Penalty          float64    `db:"penalty"`
	FineAmount       float64    `db:"fine_amt"`
}

type RequestType string

const (
	RequestExisting RequestType = "existing"
	RequestNew      RequestType = "new"
)

type RequestState string

const (
	RequestDraft   RequestState = "draft"
	RequestConfirm RequestState = "confirm"
	RequestCancel  RequestState = "cancel"
)

type BookRequest struct {
	ID          int          `db:"id"`
	ReqID       string       `db:"req_id"`
	CardID      int          `db:"card_id"`
	Type        RequestType  `db:"request_type"`
	BookID      *int         `db:"book_id"`
	NewBookName string       `db:"new_book_name"`
	BookName    string       `db:"book_name"`
	IssueID     *int         `db:"issue_id"`
	State       RequestState `db:"state"`
}

type InvoiceStatus string

const (
	InvoiceOpen InvoiceStatus = "open"
	InvoicePaid InvoiceStatus = "paid"
)

const OutInvoice = "out_invoice"

type Invoice struct {
	ID        int           `db:"id"`
	UID       string        `db:"invoice_uid"`
	IssueID   int           `db:"issue_id"`
	Type      string        `db:"invoice_type"`
	Partner   string        `db:"partner"`
	Address   string        `db:"address"`
	Reference string        `db:"reference"`
	Status    InvoiceStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
	Lines     []InvoiceLine
}

func (i Invoice) Total() float64 {
	var total float64
	for _, l := range i.Lines {
		total += l.PriceUnit
	}
	return total
}

type InvoiceLine struct {
	ID        int     `db:"id"`
	InvoiceID int     `db:"invoice_id"`
	Name      string  `db:"name"`
	PriceUnit float64 `db:"price_unit"`
}

type Scrap struct {
	ID        int       `db:"id"`
	BookID    int       `db:"book_id"`
	IssueID   int       `db:"issue_id"`
	Origin    string    `db:"origin"`
	CreatedAt time.Time `db:"created_at"`
}

// IssueFilter narrows ListIssues; nil fields match everything.
type IssueFilter struct {
	CardID *int
	State  *IssueState
}

type RequestFilter struct {
	CardID *int
	State  *RequestState
}

// NewIssue is the input of a checkout: the card and book are required, the
// loan policy and issue date are optional.
type NewIssue struct {
	BookID      int
	CardID      int
	ReturnDayID *int
	DateIssue   *time.Time
}

type NewRequest struct {
	CardID      int
	Type        RequestType
	BookID      *int
	NewBookName string
}
