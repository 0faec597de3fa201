package model

import "time"

type ContactEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Email     string     `db:"email" json:"email"`
	Phone     string     `db:"phone" json:"phone"`
	Company   string     `db:"company" json:"company"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}

type ContactCreateRequest struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

func (r *ContactCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.Name, "name"),
		raw.field(&r.Email, "email"),
		raw.field(&r.Phone, "phone"),
		raw.field(&r.Company, "company"),
	}
	return firstError(steps)
}

type ContactPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

func (p *ContactPatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.Name, "name"),
		raw.field(&p.Email, "email"),
		raw.field(&p.Phone, "phone"),
		raw.field(&p.Company, "company"),
	}
	return firstError(steps)
}

func (p *ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Company == nil
}
