package model

import "time"

// UserEntity represents a row of the users table. Role, DocumentType and
// Gender hold the stored vocabulary after a scan; the application layer
// rewrites them into the API vocabulary before the entity leaves the
// service.
type UserEntity struct {
	ID             uint64     `db:"id" json:"id"`
	FirstName      string     `db:"first_name" json:"firstName"`
	LastName       string     `db:"last_name" json:"lastName"`
	Email          string     `db:"email" json:"email"`
	Role           string     `db:"role_name" json:"role"`
	DocumentType   string     `db:"document_type" json:"documentType"`
	DocumentNumber string     `db:"document_number" json:"documentNumber"`
	BirthDate      *time.Time `db:"birth_date" json:"birthDate"`
	Gender         string     `db:"gender" json:"gender"`
	Phone          string     `db:"phone" json:"phone"`
	Address        *string    `db:"address" json:"address"`
	City           *string    `db:"city" json:"city"`
	Country        *string    `db:"country" json:"country"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Active         bool       `db:"active" json:"active"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updatedAt"`
}

// UserFilter for querying users
type UserFilter struct {
	ID        uint64
	Email     string
	ExcludeID uint64
}

type UserCreateRequest struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	Role           string
	DocumentType   string
	DocumentNumber string
	BirthDate      *string
	Gender         string
	Phone          string
	Address        *string
	City           *string
	Country        *string
}

func (r *UserCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.FirstName, "firstName", "first_name"),
		raw.field(&r.LastName, "lastName", "last_name"),
		raw.field(&r.Email, "email"),
		raw.field(&r.Password, "password"),
		raw.field(&r.Role, "role"),
		raw.field(&r.DocumentType, "documentType", "document_type"),
		raw.field(&r.DocumentNumber, "documentNumber", "document_number"),
		raw.field(&r.BirthDate, "birthDate", "birth_date"),
		raw.field(&r.Gender, "gender"),
		raw.field(&r.Phone, "phone"),
		raw.field(&r.Address, "address"),
		raw.field(&r.City, "city"),
		raw.field(&r.Country, "country"),
	}
	return firstError(steps)
}

// UserPatch carries only the fields present in an update payload.
type UserPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Password       *string
	Role           *string
	DocumentType   *string
	DocumentNumber *string
	BirthDate      *string
	Gender         *string
	Phone          *string
	Address        *string
	City           *string
	Country        *string
	Active         *bool
}

func (p *UserPatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.FirstName, "firstName", "first_name"),
		raw.field(&p.LastName, "lastName", "last_name"),
		raw.field(&p.Email, "email"),
		raw.field(&p.Password, "password"),
		raw.field(&p.Role, "role"),
		raw.field(&p.DocumentType, "documentType", "document_type"),
		raw.field(&p.DocumentNumber, "documentNumber", "document_number"),
		raw.field(&p.BirthDate, "birthDate", "birth_date"),
		raw.field(&p.Gender, "gender"),
		raw.field(&p.Phone, "phone"),
		raw.field(&p.Address, "address"),
		raw.field(&p.City, "city"),
		raw.field(&p.Country, "country"),
		raw.field(&p.Active, "active"),
	}
	return firstError(steps)
}

func (p *UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Password == nil && p.Role == nil && p.DocumentType == nil &&
		p.DocumentNumber == nil && p.BirthDate == nil && p.Gender == nil &&
		p.Phone == nil && p.Address == nil && p.City == nil &&
		p.Country == nil && p.Active == nil
}

// UserWrite carries column values in the stored vocabulary, built by the
// application layer for inserts (all core fields set) and partial updates
// (only the mentioned fields set).
type UserWrite struct {
	FirstName      *string
	LastName       *string
	Email          *string
	DocumentType   *string
	DocumentNumber *string
	BirthDate      *time.Time
	Gender         *string
	Phone          *string
	Address        *string
	City           *string
	Country        *string
	PasswordHash   *string
	RoleName       *string
	Active         *bool
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
