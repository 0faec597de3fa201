package model

import "time"

type QuoteEntity struct {
	ID             uint64            `db:"id" json:"id"`
	StartDate      time.Time         `db:"start_date" json:"startDate"`
	EndDate        time.Time         `db:"end_date" json:"endDate"`
	EstimatedPrice float64           `db:"estimated_price" json:"estimatedPrice"`
	PackageID      *uint64           `db:"package_id" json:"packageId"`
	ClientID       uint64            `db:"client_id" json:"clientId"`
	EmployeeID     uint64            `db:"employee_id" json:"employeeId"`
	Companions     []CompanionEntity `db:"-" json:"companions"`
}

type CompanionEntity struct {
	ID             uint64     `db:"id" json:"id"`
	FirstName      string     `db:"first_name" json:"firstName"`
	LastName       string     `db:"last_name" json:"lastName"`
	DocumentNumber *string    `db:"document_number" json:"documentNumber"`
	Nationality    string     `db:"nationality" json:"nationality"`
	BirthDate      *time.Time `db:"birth_date" json:"birthDate"`
	IsMinor        bool       `db:"is_minor" json:"isMinor"`
	QuoteID        uint64     `db:"quote_id" json:"quoteId"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

type CompanionRequest struct {
	FirstName      string
	LastName       string
	DocumentNumber *string
	Nationality    *string
	BirthDate      *string
	IsMinor        *bool
}

func (r *CompanionRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.FirstName, "firstName", "first_name"),
		raw.field(&r.LastName, "lastName", "last_name"),
		raw.field(&r.DocumentNumber, "documentNumber", "document_number"),
		raw.field(&r.Nationality, "nationality"),
		raw.field(&r.BirthDate, "birthDate", "birth_date"),
		raw.field(&r.IsMinor, "isMinor", "is_minor"),
	}
	return firstError(steps)
}

type QuoteCreateRequest struct {
	StartDate      string
	EndDate        string
	EstimatedPrice *float64
	PackageID      *uint64
	ClientID       uint64
	EmployeeID     uint64
	Companions     []CompanionRequest
}

func (r *QuoteCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.StartDate, "startDate", "start_date"),
		raw.field(&r.EndDate, "endDate", "end_date"),
		raw.field(&r.EstimatedPrice, "estimatedPrice", "estimated_price"),
		raw.field(&r.PackageID, "packageId", "package_id"),
		raw.field(&r.ClientID, "clientId", "client_id"),
		raw.field(&r.EmployeeID, "employeeId", "employee_id"),
		raw.field(&r.Companions, "companions"),
	}
	return firstError(steps)
}

type QuoteWrite struct {
	StartDate      *time.Time
	EndDate        *time.Time
	EstimatedPrice *float64
	PackageID      *uint64
	ClientID       *uint64
	EmployeeID     *uint64
}

type CompanionWrite struct {
	FirstName      string
	LastName       string
	DocumentNumber *string
	Nationality    string
	BirthDate      *time.Time
	IsMinor        bool
}

type QuotePatch struct {
	StartDate      *string
	EndDate        *string
	EstimatedPrice *float64
	PackageID      *uint64
	ClientID       *uint64
	// Companions present (even empty) triggers a full replace of the set.
	Companions    []CompanionRequest
	HasCompanions bool
}

func (p *QuotePatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	if _, ok := raw["companions"]; ok {
		p.HasCompanions = true
	}
	steps := []error{
		raw.field(&p.StartDate, "startDate", "start_date"),
		raw.field(&p.EndDate, "endDate", "end_date"),
		raw.field(&p.EstimatedPrice, "estimatedPrice", "estimated_price"),
		raw.field(&p.PackageID, "packageId", "package_id"),
		raw.field(&p.ClientID, "clientId", "client_id"),
		raw.field(&p.Companions, "companions"),
	}
	return firstError(steps)
}

func (p *QuotePatch) IsEmpty() bool {
	return p.StartDate == nil && p.EndDate == nil && p.EstimatedPrice == nil &&
		p.PackageID == nil && p.ClientID == nil && !p.HasCompanions
}
