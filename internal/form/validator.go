package form

import (
	"errors"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

// emailRule accepts addresses govalidator considers well formed.
var emailRule = validation.NewStringRule(govalidator.IsEmail, "must be a valid email address")

// ValidateStruct is validation.ValidateStruct that collects every field
// violation into an *entity.ValidationError.
func ValidateStruct(structField interface{}, rules ...*validation.FieldRules) error {
	fields := map[string]string{}

	for _, rule := range rules {
		err := validation.ValidateStruct(structField, rule)
		if err == nil {
			continue
		}
		var ve validation.Errors
		if !errors.As(err, &ve) {
			// internal error such as a field pointer outside the struct
			return err
		}
		for key, value := range ve {
			fields[key] = formatErrMsg(value.Error())
		}
	}
	if len(fields) == 0 {
		return nil
	}

	return &entity.ValidationError{
		Message: "Validation failed",
		Fields:  fields,
	}
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}
