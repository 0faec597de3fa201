package model

import "time"

type ClientEntity struct {
	ID                uint64     `db:"id" json:"id"`
	FirstName         string     `db:"first_name" json:"firstName"`
	LastName          string     `db:"last_name" json:"lastName"`
	Email             string     `db:"email" json:"email"`
	Phone             string     `db:"phone" json:"phone"`
	DocumentNumber    string     `db:"document_number" json:"documentNumber"`
	Nationality       string     `db:"nationality" json:"nationality"`
	Passport          string     `db:"passport" json:"passport"`
	MaritalStatus     string     `db:"marital_status" json:"maritalStatus"`
	TravelPreferences *string    `db:"travel_preferences" json:"travelPreferences"`
	Satisfaction      int        `db:"satisfaction" json:"satisfaction"`
	Status            string     `db:"status" json:"status"`
	CreatedByUserID   uint64     `db:"user_id" json:"createdByUserId"`
	ContactID         *uint64    `db:"contact_id" json:"contactId"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt         *time.Time `db:"updated_at" json:"updatedAt"`

	// joined from users, for list views
	CreatedByFirstName *string `db:"user_first_name" json:"createdByFirstName"`
	CreatedByLastName  *string `db:"user_last_name" json:"createdByLastName"`
}

type ClientCreateRequest struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	DocumentNumber    string
	Nationality       string
	Passport          string
	MaritalStatus     string
	TravelPreferences *string
	Satisfaction      *int
	Status            *string
	CreatedByUserID   uint64
	ContactID         *uint64
}

func (r *ClientCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.FirstName, "firstName", "first_name"),
		raw.field(&r.LastName, "lastName", "last_name"),
		raw.field(&r.Email, "email"),
		raw.field(&r.Phone, "phone"),
		raw.field(&r.DocumentNumber, "documentNumber", "document_number"),
		raw.field(&r.Nationality, "nationality"),
		raw.field(&r.Passport, "passport"),
		raw.field(&r.MaritalStatus, "maritalStatus", "marital_status"),
		raw.field(&r.TravelPreferences, "travelPreferences", "travel_preferences"),
		raw.field(&r.Satisfaction, "satisfaction"),
		raw.field(&r.Status, "status"),
		raw.field(&r.CreatedByUserID, "createdByUserId", "created_by_user_id", "userId", "user_id"),
		raw.field(&r.ContactID, "contactId", "contact_id"),
	}
	return firstError(steps)
}

type ClientPatch struct {
	FirstName         *string
	LastName          *string
	Email             *string
	Phone             *string
	DocumentNumber    *string
	Nationality       *string
	Passport          *string
	MaritalStatus     *string
	TravelPreferences *string
	Satisfaction      *int
	Status            *string
	ContactID         *uint64
}

func (p *ClientPatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.FirstName, "firstName", "first_name"),
		raw.field(&p.LastName, "lastName", "last_name"),
		raw.field(&p.Email, "email"),
		raw.field(&p.Phone, "phone"),
		raw.field(&p.DocumentNumber, "documentNumber", "document_number"),
		raw.field(&p.Nationality, "nationality"),
		raw.field(&p.Passport, "passport"),
		raw.field(&p.MaritalStatus, "maritalStatus", "marital_status"),
		raw.field(&p.TravelPreferences, "travelPreferences", "travel_preferences"),
		raw.field(&p.Satisfaction, "satisfaction"),
		raw.field(&p.Status, "status"),
		raw.field(&p.ContactID, "contactId", "contact_id"),
	}
	return firstError(steps)
}

func (p *ClientPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Phone == nil && p.DocumentNumber == nil && p.Nationality == nil &&
		p.Passport == nil && p.MaritalStatus == nil &&
		p.TravelPreferences == nil && p.Satisfaction == nil &&
		p.Status == nil && p.ContactID == nil
}
