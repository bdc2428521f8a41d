package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/vetcare/chat-service/internal/api"
)

type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	validate := playground.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: validate,
	}
}

func (v *Validator) ValidateRequestChat(req *api.RequestChatRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return describe(err)
	}
	return nil
}

func (v *Validator) ValidateStartChat(req *api.StartChatRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return describe(err)
	}
	return nil
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if err := v.validate.Struct(req); err != nil {
		return describe(err)
	}

	return nil
}

// describe turns the first field error into a message naming the json field.
func describe(err error) error {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "uuid":
		return fmt.Errorf("%s must be a valid uuid", field)
	case "max":
		return fmt.Errorf("%s exceeds maximum length of %s characters", field, fe.Param())
	default:
		return fmt.Errorf("%s is invalid (%s)", field, fe.Tag())
	}
}
