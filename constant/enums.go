package constant

import "fmt"

// The database keeps the vocabulary the CRM was migrated with (long role
// and document-type names, single-letter genders); the API speaks the
// shorter application vocabulary. Both directions are declared here so the
// mapping stays auditable.
//
// EnumMode selects what happens on an unmapped value: lenient keeps the
// legacy behavior of silently falling back to a default, strict rejects
// the value.

type EnumMode int

const (
	EnumLenient EnumMode = iota
	EnumStrict
)

// Application roles.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
)

var roleDBToApp = map[string]string{
	"Super Administrator": RoleSuperAdmin,
	"Administrator":       RoleAdmin,
	"Advisor":             RoleEmployee,
}

var roleAppToDB = map[string]string{
	RoleSuperAdmin: "Super Administrator",
	RoleAdmin:      "Administrator",
	RoleEmployee:   "Advisor",
}

var docTypeDBToApp = map[string]string{
	"Citizenship Card": "CC",
	"Identity Card":    "TI",
	"Passport":         "PP",
	"Foreigner ID":     "CE",
	"NIT":              "NIT",
}

var docTypeAppToDB = map[string]string{
	"CC":  "Citizenship Card",
	"TI":  "Identity Card",
	"PP":  "Passport",
	"CE":  "Foreigner ID",
	"NIT": "NIT",
}

var genderDBToApp = map[string]string{
	"M":     "Male",
	"F":     "Female",
	"Other": "Other",
}

var genderAppToDB = map[string]string{
	"Male":   "M",
	"Female": "F",
	"Other":  "Other",
}

func translate(table map[string]string, value, fallback, label string, mode EnumMode) (string, error) {
	if mapped, ok := table[value]; ok {
		return mapped, nil
	}
	if mode == EnumStrict {
		return "", fmt.Errorf("unmapped %s value %q", label, value)
	}
	return fallback, nil
}

func RoleToApp(dbRole string, mode EnumMode) (string, error) {
	return translate(roleDBToApp, dbRole, RoleEmployee, "role", mode)
}

func RoleToDB(appRole string, mode EnumMode) (string, error) {
	return translate(roleAppToDB, appRole, "Advisor", "role", mode)
}

func DocTypeToApp(dbType string, mode EnumMode) (string, error) {
	// legacy rows may already hold the short code; pass it through
	return translate(docTypeDBToApp, dbType, dbType, "document type", mode)
}

func DocTypeToDB(appType string, mode EnumMode) (string, error) {
	return translate(docTypeAppToDB, appType, "Citizenship Card", "document type", mode)
}

func GenderToApp(dbGender string, mode EnumMode) (string, error) {
	return translate(genderDBToApp, dbGender, dbGender, "gender", mode)
}

func GenderToDB(appGender string, mode EnumMode) (string, error) {
	return translate(genderAppToDB, appGender, "Other", "gender", mode)
}
