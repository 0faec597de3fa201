package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init builds the validator singleton (idempotent).
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
	})
}

// ValidateStruct validates tagged request structs, initializing the
// singleton on first use.
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}
