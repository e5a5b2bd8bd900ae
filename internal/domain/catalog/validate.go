package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/yungbote/aislechef-backend/internal/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a catalog record before it is written. Failures wrap
// errors.ErrInvalidArgument.
func Validate(record any) error {
	if record == nil {
		return fmt.Errorf("%w: nil record", pkgerrors.ErrInvalidArgument)
	}
	if err := validatorInstance().Struct(record); err != nil {
		return fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, describe(err))
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
