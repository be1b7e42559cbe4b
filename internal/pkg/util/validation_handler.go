package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验 validate 标签，返回首个失败字段；原始 ValidationErrors 保留在错误链中
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return fmt.Errorf("field [%s] failed rule [%s]: %w",
				firstError.Field(),
				firstError.Tag(),
				vErrs)
		}
		return err
	}
	return nil
}
