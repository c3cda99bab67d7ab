package api

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateSingleLine строка без переводов строк. Процессор отклоняет многострочные имена.
func validateSingleLine(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return !strings.ContainsAny(str, "\r\n")
}

func registerValidators() error {
	var err error
	validatorsOnce.Do(func() {
		v, _ := binding.Validator.Engine().(*validator.Validate)
		if regErr := v.RegisterValidation("max_bytes", validateMaxBytes); regErr != nil {
			err = fmt.Errorf("validator registration: %s", regErr.Error())
			return
		}
		if regErr := v.RegisterValidation("single_line", validateSingleLine); regErr != nil {
			err = fmt.Errorf("validator registration: %s", regErr.Error())
		}
	})
	return err
}
