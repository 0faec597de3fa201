package model

import "time"

type ReservationEntity struct {
	ID               uint64    `db:"id" json:"id"`
	ReservedAt       time.Time `db:"reserved_at" json:"reservedAt"`
	PeopleCount      int       `db:"people_count" json:"peopleCount"`
	TotalPrice       float64   `db:"total_price" json:"totalPrice"`
	StartDate        time.Time `db:"start_date" json:"startDate"`
	EndDate          time.Time `db:"end_date" json:"endDate"`
	ClientID         uint64    `db:"client_id" json:"clientId"`
	PackageID        *uint64   `db:"package_id" json:"packageId"`
	DestinationID    *uint64   `db:"destination_id" json:"destinationId"`
	DestinationPrice *float64  `db:"destination_price" json:"destinationPrice"`
	EmployeeID       uint64    `db:"employee_id" json:"employeeId"`

	// projections for list views
	EmployeeFirstName *string `db:"employee_first_name" json:"employeeFirstName"`
	EmployeeLastName  *string `db:"employee_last_name" json:"employeeLastName"`
	PaidTotal         float64 `db:"paid_total" json:"paidTotal"`
}

type ReservationCreateRequest struct {
	PeopleCount      int
	TotalPrice       *float64
	StartDate        string
	EndDate          string
	ClientID         uint64
	PackageID        *uint64
	DestinationID    *uint64
	DestinationPrice *float64
	EmployeeID       uint64
}

func (r *ReservationCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.PeopleCount, "peopleCount", "people_count"),
		raw.field(&r.TotalPrice, "totalPrice", "total_price"),
		raw.field(&r.StartDate, "startDate", "start_date"),
		raw.field(&r.EndDate, "endDate", "end_date"),
		raw.field(&r.ClientID, "clientId", "client_id"),
		raw.field(&r.PackageID, "packageId", "package_id"),
		raw.field(&r.DestinationID, "destinationId", "destination_id"),
		raw.field(&r.DestinationPrice, "destinationPrice", "destination_price"),
		raw.field(&r.EmployeeID, "employeeId", "employee_id"),
	}
	return firstError(steps)
}

// ReservationWrite carries parsed column values for inserts and partial
// updates; nil means "leave untouched".
type ReservationWrite struct {
	PeopleCount      *int
	TotalPrice       *float64
	StartDate        *time.Time
	EndDate          *time.Time
	ClientID         *uint64
	PackageID        *uint64
	DestinationID    *uint64
	DestinationPrice *float64
	EmployeeID       *uint64
}

type ReservationPatch struct {
	PeopleCount      *int
	TotalPrice       *float64
	StartDate        *string
	EndDate          *string
	ClientID         *uint64
	PackageID        *uint64
	DestinationID    *uint64
	DestinationPrice *float64
	// EmployeeID deliberately absent: reassignment is not supported through
	// the update endpoint because payments reference the assignment.
}

func (p *ReservationPatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.PeopleCount, "peopleCount", "people_count"),
		raw.field(&p.TotalPrice, "totalPrice", "total_price"),
		raw.field(&p.StartDate, "startDate", "start_date"),
		raw.field(&p.EndDate, "endDate", "end_date"),
		raw.field(&p.ClientID, "clientId", "client_id"),
		raw.field(&p.PackageID, "packageId", "package_id"),
		raw.field(&p.DestinationID, "destinationId", "destination_id"),
		raw.field(&p.DestinationPrice, "destinationPrice", "destination_price"),
	}
	return firstError(steps)
}

func (p *ReservationPatch) IsEmpty() bool {
	return p.PeopleCount == nil && p.TotalPrice == nil && p.StartDate == nil &&
		p.EndDate == nil && p.ClientID == nil && p.PackageID == nil &&
		p.DestinationID == nil && p.DestinationPrice == nil
}
