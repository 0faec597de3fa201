package model

type DestinationEntity struct {
	ID             uint64   `db:"id" json:"id"`
	City           string   `db:"city" json:"city"`
	Country        string   `db:"country" json:"country"`
	Description    *string  `db:"description" json:"description"`
	AverageClimate *string  `db:"average_climate" json:"averageClimate"`
	HighSeason     *string  `db:"high_season" json:"highSeason"`
	MainLanguage   *string  `db:"main_language" json:"mainLanguage"`
	Currency       *string  `db:"currency" json:"currency"`
	BasePrice      *float64 `db:"base_price" json:"basePrice"`
	ProviderID     *uint64  `db:"provider_id" json:"providerId"`
}

type DestinationCreateRequest struct {
	City           string
	Country        string
	Description    *string
	AverageClimate *string
	HighSeason     *string
	MainLanguage   *string
	Currency       *string
	BasePrice      *float64
	ProviderID     *uint64
}

func (r *DestinationCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.City, "city"),
		raw.field(&r.Country, "country"),
		raw.field(&r.Description, "description"),
		raw.field(&r.AverageClimate, "averageClimate", "average_climate"),
		raw.field(&r.HighSeason, "highSeason", "high_season"),
		raw.field(&r.MainLanguage, "mainLanguage", "main_language"),
		raw.field(&r.Currency, "currency"),
		raw.field(&r.BasePrice, "basePrice", "base_price"),
		raw.field(&r.ProviderID, "providerId", "provider_id"),
	}
	return firstError(steps)
}

type DestinationPatch struct {
	City           *string
	Country        *string
	Description    *string
	AverageClimate *string
	HighSeason     *string
	MainLanguage   *string
	Currency       *string
	BasePrice      *float64
	ProviderID     *uint64
}

func (p *DestinationPatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.City, "city"),
		raw.field(&p.Country, "country"),
		raw.field(&p.Description, "description"),
		raw.field(&p.AverageClimate, "averageClimate", "average_climate"),
		raw.field(&p.HighSeason, "highSeason", "high_season"),
		raw.field(&p.MainLanguage, "mainLanguage", "main_language"),
		raw.field(&p.Currency, "currency"),
		raw.field(&p.BasePrice, "basePrice", "base_price"),
		raw.field(&p.ProviderID, "providerId", "provider_id"),
	}
	return firstError(steps)
}

func (p *DestinationPatch) IsEmpty() bool {
	return p.City == nil && p.Country == nil && p.Description == nil &&
		p.AverageClimate == nil && p.HighSeason == nil &&
		p.MainLanguage == nil && p.Currency == nil && p.BasePrice == nil &&
		p.ProviderID == nil
}
