package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type DecodeRequest struct {
	Txrep string `json:"txrep" binding:"required,max=1048576"`
}

// GetErrorMsg translates binding validation errors into a readable message
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "请求参数错误: " + err.Error()
	}

	var errMsgs []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("%s 不能为空", e.Field()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("%s 长度不能超过 %s", e.Field(), e.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("%s 校验失败 (%s)", e.Field(), e.Tag()))
		}
	}
	return strings.Join(errMsgs, "; ")
}
