package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validator                *validator.Validate
	logger                   *zap.Logger
	tagValidationDetailsOnce sync.Once
	tagValidationDetailsMap  map[string]tagValidationDetails
}

type tagValidationDetails struct {
	validatorFunc validator.Func
	err           error
}

// New creates a validator with the custom tags registered
func New(logger *zap.Logger) (*Validator, error) {
	v := &Validator{validator: validator.New(validator.WithRequiredStructEnabled()), logger: logger}
	if err := v.registerCustomValidatorsForTags(); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate returns a client-facing error describing the first failed field
func (v *Validator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	v.logger.Debug("validation failed", zap.Error(err))

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		if details, ok := v.getTagValidationDetails()[first.Tag()]; ok {
			return details.err
		}

		switch first.Tag() {
		case "required":
			return fmt.Errorf("missing required field '%s'", strings.ToLower(first.Field()))
		case "min", "max":
			return fmt.Errorf("value or length of field '%s' is not in the expected range", strings.ToLower(first.Field()))
		default:
			return fmt.Errorf("invalid value for field '%s'", strings.ToLower(first.Field()))
		}
	}
	return err
}

func (v *Validator) getTagValidationDetails() map[string]tagValidationDetails {
	v.tagValidationDetailsOnce.Do(func() {
		v.tagValidationDetailsMap = map[string]tagValidationDetails{
			"valid_query": {validatorFunc: isValidQuery, err: errors.New("invalid query")},
			"lat_long":    {validatorFunc: isValidLatLong, err: errors.New("invalid lat_long, expected 'lat,long'")},
		}
	})
	return v.tagValidationDetailsMap
}

func (v *Validator) registerCustomValidatorsForTags() error {
	for tag, details := range v.getTagValidationDetails() {
		if err := v.validator.RegisterValidation(tag, details.validatorFunc); err != nil {
			v.logger.Error("failed to register custom validator function", zap.String("tag", tag), zap.Error(err))
			return err
		}
	}
	return nil
}

func isValidQuery(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isValidLatLong(fl validator.FieldLevel) bool {
	parts := strings.Split(fl.Field().String(), ",")
	if len(parts) != 2 {
		return false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lon < -180 || lon > 180 {
		return false
	}
	return true
}
