package model

type PackageEntity struct {
	ID               uint64  `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Description      *string `db:"description" json:"description"`
	BasePrice        float64 `db:"base_price" json:"basePrice"`
	DurationDays     int     `db:"duration_days" json:"durationDays"`
	MaxCapacity      int     `db:"max_capacity" json:"maxCapacity"`
	IncludedServices *string `db:"included_services" json:"includedServices"`
	DestinationIDs   *string `db:"destination_ids" json:"destinationIds"`
}

type PackageCreateRequest struct {
	Name             string
	Description      *string
	BasePrice        *float64
	DurationDays     *int
	MaxCapacity      *int
	IncludedServices *string
	DestinationIDs   *string
}

func (r *PackageCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.Name, "name"),
		raw.field(&r.Description, "description"),
		raw.field(&r.BasePrice, "basePrice", "base_price"),
		raw.field(&r.DurationDays, "durationDays", "duration_days"),
		raw.field(&r.MaxCapacity, "maxCapacity", "max_capacity"),
		raw.field(&r.IncludedServices, "includedServices", "included_services"),
		raw.field(&r.DestinationIDs, "destinationIds", "destination_ids"),
	}
	return firstError(steps)
}

type PackagePatch struct {
	Name             *string
	Description      *string
	BasePrice        *float64
	DurationDays     *int
	MaxCapacity      *int
	IncludedServices *string
	DestinationIDs   *string
}

func (p *PackagePatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.Name, "name"),
		raw.field(&p.Description, "description"),
		raw.field(&p.BasePrice, "basePrice", "base_price"),
		raw.field(&p.DurationDays, "durationDays", "duration_days"),
		raw.field(&p.MaxCapacity, "maxCapacity", "max_capacity"),
		raw.field(&p.IncludedServices, "includedServices", "included_services"),
		raw.field(&p.DestinationIDs, "destinationIds", "destination_ids"),
	}
	return firstError(steps)
}

func (p *PackagePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.BasePrice == nil &&
		p.DurationDays == nil && p.MaxCapacity == nil &&
		p.IncludedServices == nil && p.DestinationIDs == nil
}
