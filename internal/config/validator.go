package config

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/studysaathi/studysaathi/internal/strength"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("file", isFileReadable); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}
	if err := registerMessage(validate, trans, "file", "{0} must be an existing and readable file"); err != nil {
		return nil, nil, err
	}

	validate.RegisterStructValidation(validateScoring, strength.Config{})
	if err := registerMessage(validate, trans, "weights_sum", "{0} must add up to 1"); err != nil {
		return nil, nil, err
	}
	if err := registerMessage(validate, trans, "thresholds", "{0} must be above medium_threshold"); err != nil {
		return nil, nil, err
	}

	return validate, trans, nil
}

func registerMessage(validate *validator.Validate, trans ut.Translator, tag, message string) error {
	if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, message, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return fmt.Errorf("failed to register %s translation: %w", tag, err)
	}
	return nil
}

// validateScoring rejects weightings that do not form a weighted average.
func validateScoring(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(strength.Config)

	w := cfg.Weights
	if math.Abs(w.Time+w.Notes+w.Confidence+w.Quiz-1) > 1e-6 {
		sl.ReportError(cfg.Weights, "weights", "Weights", "weights_sum", "")
	}
	if cfg.StrongThreshold <= cfg.MediumThreshold {
		sl.ReportError(cfg.StrongThreshold, "strong_threshold", "StrongThreshold", "thresholds", "")
	}
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}
