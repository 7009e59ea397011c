package usecase

import (
	"fmt"
	"reflect"
	"strings"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return audit.IsHTTPURL(fl.Field().String())
	})
	return v
}

func validateReport(r *model.Report) error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return checkSectionIDs(r.Sections)
}

// checkSectionIDs requires the ids "1".."10", each exactly once.
func checkSectionIDs(sections []model.Section) error {
	seen := make(map[int]bool, len(sections))
	for _, s := range sections {
		n := s.ID.Number()
		if n < 1 || n > model.SectionCount {
			return fmt.Errorf("section id %q out of range", s.ID)
		}
		if seen[n] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[n] = true
	}
	if len(seen) != model.SectionCount {
		return fmt.Errorf("expected %d sections, got %d", model.SectionCount, len(seen))
	}
	return nil
}

func validateAdCampaign(c *model.AdCampaign) error {
	return validate.Struct(c)
}
