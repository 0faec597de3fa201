package transport

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/aquatour/crm-backend/application/audit"
	authapp "github.com/aquatour/crm-backend/application/auth"
	clientapp "github.com/aquatour/crm-backend/application/client"
	contactapp "github.com/aquatour/crm-backend/application/contact"
	destinationapp "github.com/aquatour/crm-backend/application/destination"
	paymentapp "github.com/aquatour/crm-backend/application/payment"
	providerapp "github.com/aquatour/crm-backend/application/provider"
	quoteapp "github.com/aquatour/crm-backend/application/quote"
	reservationapp "github.com/aquatour/crm-backend/application/reservation"
	packageapp "github.com/aquatour/crm-backend/application/travelpackage"
	"github.com/aquatour/crm-backend/application/uniqueness"
	userapp "github.com/aquatour/crm-backend/application/user"
	"github.com/aquatour/crm-backend/cmd/config"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	redisrepo "github.com/aquatour/crm-backend/repository/redis"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/gorilla/mux"
)

type RestHandler struct {
	Config         *config.Config
	AuthApp        authapp.AuthApp
	UserApp        userapp.UserApp
	ClientApp      clientapp.ClientApp
	ProviderApp    providerapp.ProviderApp
	ContactApp     contactapp.ContactApp
	DestinationApp destinationapp.DestinationApp
	PackageApp     packageapp.PackageApp
	ReservationApp reservationapp.ReservationApp
	QuoteApp       quoteapp.QuoteApp
	PaymentApp     paymentapp.PaymentApp
	Unique         uniqueness.Validator
	Recorder       audit.Recorder
	RedisRepo      redisrepo.Repository
}

func NewTransport(rh *RestHandler) http.Handler {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)

	// Session
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)

	// Users
	api.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/check-email/{email}", rh.CheckUserEmail).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", rh.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", rh.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/users/{id}", rh.DeleteUser).Methods(http.MethodDelete)

	// Clients
	api.HandleFunc("/clients", rh.ListClients).Methods(http.MethodGet)
	api.HandleFunc("/clients/user/{userId}", rh.ListClientsByUser).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", rh.GetClient).Methods(http.MethodGet)
	api.HandleFunc("/clients", rh.CreateClient).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}", rh.UpdateClient).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/clients/{id}", rh.DeleteClient).Methods(http.MethodDelete)

	// Providers
	api.HandleFunc("/providers", rh.ListProviders).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}", rh.GetProvider).Methods(http.MethodGet)
	api.HandleFunc("/providers", rh.CreateProvider).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}", rh.UpdateProvider).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/providers/{id}", rh.DeleteProvider).Methods(http.MethodDelete)

	// Contacts
	api.HandleFunc("/contacts", rh.ListContacts).Methods(http.MethodGet)
	api.HandleFunc("/contacts/{id}", rh.GetContact).Methods(http.MethodGet)
	api.HandleFunc("/contacts", rh.CreateContact).Methods(http.MethodPost)
	api.HandleFunc("/contacts/{id}", rh.UpdateContact).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/contacts/{id}", rh.DeleteContact).Methods(http.MethodDelete)

	// Destinations
	api.HandleFunc("/destinations", rh.ListDestinations).Methods(http.MethodGet)
	api.HandleFunc("/destinations/{id}", rh.GetDestination).Methods(http.MethodGet)
	api.HandleFunc("/destinations", rh.CreateDestination).Methods(http.MethodPost)
	api.HandleFunc("/destinations/{id}", rh.UpdateDestination).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/destinations/{id}", rh.DeleteDestination).Methods(http.MethodDelete)

	// Packages
	api.HandleFunc("/packages", rh.ListPackages).Methods(http.MethodGet)
	api.HandleFunc("/packages/{id}", rh.GetPackage).Methods(http.MethodGet)
	api.HandleFunc("/packages", rh.CreatePackage).Methods(http.MethodPost)
	api.HandleFunc("/packages/{id}", rh.UpdatePackage).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/packages/{id}", rh.DeletePackage).Methods(http.MethodDelete)

	// Reservations
	api.HandleFunc("/reservations", rh.ListReservations).Methods(http.MethodGet)
	api.HandleFunc("/reservations/employee/{employeeId}", rh.ListReservationsByEmployee).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", rh.GetReservation).Methods(http.MethodGet)
	api.HandleFunc("/reservations", rh.CreateReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", rh.UpdateReservation).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/reservations/{id}", rh.DeleteReservation).Methods(http.MethodDelete)

	// Quotes
	api.HandleFunc("/quotes", rh.ListQuotes).Methods(http.MethodGet)
	api.HandleFunc("/quotes/employee/{employeeId}", rh.ListQuotesByEmployee).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}", rh.GetQuote).Methods(http.MethodGet)
	api.HandleFunc("/quotes", rh.CreateQuote).Methods(http.MethodPost)
	api.HandleFunc("/quotes/{id}", rh.UpdateQuote).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/quotes/{id}/companions", rh.ReplaceQuoteCompanions).Methods(http.MethodPut)
	api.HandleFunc("/quotes/{id}", rh.DeleteQuote).Methods(http.MethodDelete)

	// Payments
	api.HandleFunc("/payments", rh.ListPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments/reservation/{reservationId}", rh.ListPaymentsByReservation).Methods(http.MethodGet)
	api.HandleFunc("/payments/employee/{employeeId}", rh.ListPaymentsByEmployee).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", rh.GetPayment).Methods(http.MethodGet)
	api.HandleFunc("/payments", rh.CreatePayment).Methods(http.MethodPost)
	api.HandleFunc("/payments/{id}", rh.UpdatePayment).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/payments/{id}", rh.DeletePayment).Methods(http.MethodDelete)

	// Audit
	api.HandleFunc("/audit-logs", rh.ListAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/stats", rh.AuditStats).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs", rh.PurgeAuditLogs).Methods(http.MethodDelete)
	api.HandleFunc("/access-logs", rh.ListAccessLogs).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(RateLimitMiddleware(rh.RedisRepo, rh.Config))
	router.Use(AuthMiddleware(rh.AuthApp))

	return router
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

type successEnvelope struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

type errorEnvelope struct {
	OK       bool                  `json:"ok"`
	Error    string                `json:"error"`
	Code     string                `json:"code"`
	Conflict *model.ConflictDetail `json:"conflict,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{OK: true, Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	custom, ok := err.(errors.CustomError)
	if !ok {
		custom = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, custom.ErrorHTTPCode(), errorEnvelope{
		Error:    custom.Error(),
		Code:     custom.ErrorCode(),
		Conflict: custom.Conflict(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// pathID parses the numeric path parameter or reports a validation error.
func pathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorf(constant.ErrValidation, "Invalid %s: %s", name, raw)
	}
	return id, nil
}

// clientIP strips the port from RemoteAddr; the service runs behind a
// proxy that sets X-Forwarded-For, which wins when present.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
