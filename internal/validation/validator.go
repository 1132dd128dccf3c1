package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"savings-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,50}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal amounts validate as float64 so numeric tags such as gt=0 apply
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("entry_date", validateEntryDate)
	_ = v.RegisterValidation("entry_kind", validateEntryKind)
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("max_two_decimals", validateMaxTwoDecimals)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Custom validation functions

// validateMonth accepts an empty value or a YYYY-MM key
func validateMonth(fl validator.FieldLevel) bool {
	month := fl.Field().String()
	if month == "" {
		return true
	}
	_, err := models.ParseMonth(month)
	return err == nil
}

// validateEntryDate accepts an empty value or a YYYY-MM-DD date
func validateEntryDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return true
	}
	_, err := models.ParseDate(date)
	return err == nil
}

func validateEntryKind(fl validator.FieldLevel) bool {
	return models.IsValidEntryKind(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// validateMaxTwoDecimals rejects amounts with more than 2 decimal places
func validateMaxTwoDecimals(fl validator.FieldLevel) bool {
	d, ok := fl.Parent().FieldByName(fl.StructFieldName()).Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(d.Round(2))
}
