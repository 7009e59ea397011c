package minio

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	bucketNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
	validate     = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("bucketname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return bucketNameRe.MatchString(name) && !strings.Contains(name, "--")
	})
	_ = v.RegisterValidation("objectkey", func(fl validator.FieldLevel) bool {
		key := fl.Field().String()
		return !strings.HasPrefix(key, "/") && !strings.HasSuffix(key, "/") && !strings.Contains(key, `\`)
	})
	return v
}

// invalidInput turns validator output into a single StorageError naming the first bad field.
func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewInvalidInputError(fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return NewInvalidInputError(err.Error())
}

func validateConfig(cfg *Config) error {
	if err := invalidInput(validate.Struct(cfg)); err != nil {
		return err
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += DefaultEndpointPort
	}
	return nil
}

func validateObject(obj Object) error {
	return invalidInput(validate.Struct(obj))
}

func validateKey(key string) error {
	return invalidInput(validate.Var(key, "required,objectkey"))
}

func presignExpiry(expiry time.Duration) (time.Duration, error) {
	switch {
	case expiry == 0:
		return DefaultPresignExpiry, nil
	case expiry < 0:
		return 0, NewInvalidInputError("expiry must be positive")
	case expiry > MaxPresignExpiry:
		return 0, NewInvalidInputError("expiry cannot exceed 7 days")
	}
	return expiry, nil
}
