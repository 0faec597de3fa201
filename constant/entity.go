package constant

// EntityKind identifies a table participating in cross-entity checks and
// audit events.
type EntityKind string

const (
	EntityUser        EntityKind = "user"
	EntityClient      EntityKind = "client"
	EntityProvider    EntityKind = "provider"
	EntityContact     EntityKind = "contact"
	EntityDestination EntityKind = "destination"
	EntityPackage     EntityKind = "package"
	EntityReservation EntityKind = "reservation"
	EntityQuote       EntityKind = "quote"
	EntityPayment     EntityKind = "payment"
)

// EntityDisplayName is the human-readable name used in conflict messages.
var EntityDisplayName = map[EntityKind]string{
	EntityUser:        "User",
	EntityClient:      "Client",
	EntityProvider:    "Provider",
	EntityContact:     "Contact",
	EntityDestination: "Destination",
	EntityPackage:     "Package",
	EntityReservation: "Reservation",
	EntityQuote:       "Quote",
	EntityPayment:     "Payment",
}

// UniqueField is a field participating in the global uniqueness domain.
type UniqueField string

const (
	FieldEmail    UniqueField = "email"
	FieldPhone    UniqueField = "phone"
	FieldDocument UniqueField = "document"
)

// Audit action labels.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionLogin  = "login"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "user_id"
	UserRoleKey ContextKey = "user_role"
)
