package model

type ProviderEntity struct {
	ID           uint64 `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	ProviderType string `db:"provider_type" json:"providerType"`
	Phone        string `db:"phone" json:"phone"`
	Email        string `db:"email" json:"email"`
	Status       string `db:"status" json:"status"`
}

type ProviderCreateRequest struct {
	Name         string
	ProviderType string
	Phone        string
	Email        string
	Status       *string
}

func (r *ProviderCreateRequest) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&r.Name, "name"),
		raw.field(&r.ProviderType, "providerType", "provider_type"),
		raw.field(&r.Phone, "phone"),
		raw.field(&r.Email, "email"),
		raw.field(&r.Status, "status"),
	}
	return firstError(steps)
}

type ProviderPatch struct {
	Name         *string
	ProviderType *string
	Phone        *string
	Email        *string
	Status       *string
}

func (p *ProviderPatch) UnmarshalJSON(data []byte) error {
	raw, err := parsePayload(data)
	if err != nil {
		return err
	}
	steps := []error{
		raw.field(&p.Name, "name"),
		raw.field(&p.ProviderType, "providerType", "provider_type"),
		raw.field(&p.Phone, "phone"),
		raw.field(&p.Email, "email"),
		raw.field(&p.Status, "status"),
	}
	return firstError(steps)
}

func (p *ProviderPatch) IsEmpty() bool {
	return p.Name == nil && p.ProviderType == nil && p.Phone == nil &&
		p.Email == nil && p.Status == nil
}
