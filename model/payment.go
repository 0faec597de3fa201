package model

import "time"

type PaymentEntity struct {
	ID              uint64    `db:"id" json:"id"`
	PaidAt          time.Time `db:"paid_at" json:"paidAt"`
	Method          string    `db:"method" json:"method"`
	IssuingBank     *string   `db:"issuing_bank" json:"issuingBank"`
	ReferenceNumber string    `db:"reference_number" json:"referenceNumber"`
	Amount          float64   `db:"amount" json:"amount"`
	ReservationID   *uint64   `db:"reservation_id" json:"reservationId"`
	QuoteID         *uint64   `db:"quote_id" json:"quoteId"`
}

type PaymentCreateRequest struct {
	PaidAt          *string
	Method          string
	IssuingBank     *string
	ReferenceNumber string
	Amount          float64
	ReservationID   *uint64
	QuoteID         *uint64
}

func (r *PaymentCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.PaidAt, "paidAt", "paid_at"),
		raw.field(&r.Method, "method"),
		raw.field(&r.IssuingBank, "issuingBank", "issuing_bank"),
		raw.field(&r.ReferenceNumber, "referenceNumber", "reference_number"),
		raw.field(&r.Amount, "amount"),
		raw.field(&r.ReservationID, "reservationId", "reservation_id"),
		raw.field(&r.QuoteID, "quoteId", "quote_id"),
	}
	return firstError(steps)
}

type PaymentWrite struct {
	PaidAt          *time.Time
	Method          *string
	IssuingBank     *string
	ReferenceNumber *string
	Amount          *float64
	ReservationID   *uint64
	QuoteID         *uint64
}

type PaymentPatch struct {
	PaidAt          *string
	Method          *string
	IssuingBank     *string
	ReferenceNumber *string
	Amount          *float64
	ReservationID   *uint64
	QuoteID         *uint64
}

func (p *PaymentPatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.PaidAt, "paidAt", "paid_at"),
		raw.field(&p.Method, "method"),
		raw.field(&p.IssuingBank, "issuingBank", "issuing_bank"),
		raw.field(&p.ReferenceNumber, "referenceNumber", "reference_number"),
		raw.field(&p.Amount, "amount"),
		raw.field(&p.ReservationID, "reservationId", "reservation_id"),
		raw.field(&p.QuoteID, "quoteId", "quote_id"),
	}
	return firstError(steps)
}

func (p *PaymentPatch) IsEmpty() bool {
	return p.PaidAt == nil && p.Method == nil && p.IssuingBank == nil &&
		p.ReferenceNumber == nil && p.Amount == nil &&
		p.ReservationID == nil && p.QuoteID == nil
}
