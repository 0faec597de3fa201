package model_test

import (
	"encoding/json"
	"testing"

	"github.com/aquatour/crm-backend/model"
)

func TestPatchDecoding_AcceptsBothKeyStyles(t *testing.T) {
	tests := []struct {
		name string
		body string
		want func(t *testing.T, p *model.ClientPatch)
	}{
		{
			name: "camelCase keys",
			body: `{"firstName":"Ana","documentNumber":"CC123"}`,
			want: func(t *testing.T, p *model.ClientPatch) {
				if p.FirstName == nil || *p.FirstName != "Ana" {
					t.Fatalf("FirstName = %v", p.FirstName)
				}
				if p.DocumentNumber == nil || *p.DocumentNumber != "CC123" {
					t.Fatalf("DocumentNumber = %v", p.DocumentNumber)
				}
			},
		},
		{
			name: "snake_case keys",
			body: `{"first_name":"Ana","document_number":"CC123"}`,
			want: func(t *testing.T, p *model.ClientPatch) {
				if p.FirstName == nil || *p.FirstName != "Ana" {
					t.Fatalf("FirstName = %v", p.FirstName)
				}
				if p.DocumentNumber == nil || *p.DocumentNumber != "CC123" {
					t.Fatalf("DocumentNumber = %v", p.DocumentNumber)
				}
			},
		},
		{
			name: "camelCase wins when both are sent",
			body: `{"firstName":"Ana","first_name":"Beatriz"}`,
			want: func(t *testing.T, p *model.ClientPatch) {
				if p.FirstName == nil || *p.FirstName != "Ana" {
					t.Fatalf("FirstName = %v, want Ana", p.FirstName)
				}
			},
		},
		{
			name: "explicit null reads as absent",
			body: `{"firstName":null}`,
			want: func(t *testing.T, p *model.ClientPatch) {
				if p.FirstName != nil {
					t.Fatalf("FirstName = %v, want nil", *p.FirstName)
				}
				if !p.IsEmpty() {
					t.Fatal("IsEmpty() = false, want true")
				}
			},
		},
		{
			name: "empty object is an empty patch",
			body: `{}`,
			want: func(t *testing.T, p *model.ClientPatch) {
				if !p.IsEmpty() {
					t.Fatal("IsEmpty() = false, want true")
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var patch model.ClientPatch
			if err := json.Unmarshal([]byte(tt.body), &patch); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			tt.want(t, &patch)
		})
	}
}

func TestQuotePatch_CompanionKeyPresence(t *testing.T) {
	t.Run("companions omitted leaves the set alone", func(t *testing.T) {
		var patch model.QuotePatch
		if err := json.Unmarshal([]byte(`{"estimatedPrice":1500}`), &patch); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if patch.HasCompanions {
			t.Fatal("HasCompanions = true, want false")
		}
		if patch.IsEmpty() {
			t.Fatal("IsEmpty() = true, want false")
		}
	})

	t.Run("empty companions list requests a full clear", func(t *testing.T) {
		var patch model.QuotePatch
		if err := json.Unmarshal([]byte(`{"companions":[]}`), &patch); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if !patch.HasCompanions {
			t.Fatal("HasCompanions = false, want true")
		}
		if len(patch.Companions) != 0 {
			t.Fatalf("Companions = %v, want empty", patch.Companions)
		}
		if patch.IsEmpty() {
			t.Fatal("IsEmpty() = true, want false")
		}
	})

	t.Run("companion rows decode with either key style", func(t *testing.T) {
		var patch model.QuotePatch
		body := `{"companions":[{"firstName":"Sara","last_name":"Mejia","isMinor":true}]}`
		if err := json.Unmarshal([]byte(body), &patch); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if len(patch.Companions) != 1 {
			t.Fatalf("Companions = %v, want one row", patch.Companions)
		}
		c := patch.Companions[0]
		if c.FirstName != "Sara" || c.LastName != "Mejia" {
			t.Fatalf("companion = %+v", c)
		}
		if c.IsMinor == nil || !*c.IsMinor {
			t.Fatalf("IsMinor = %v, want true", c.IsMinor)
		}
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain date", value: "2026-11-10", want: "2026-11-10"},
		{name: "full timestamp", value: "2026-11-10T15:04:05Z", want: "2026-11-10"},
		{name: "garbage", value: "soon", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Format("2006-01-02") != tt.want {
				t.Fatalf("ParseDate() = %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}
}
