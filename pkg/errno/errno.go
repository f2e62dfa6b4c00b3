package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode    = 200
	ParamErrCode   = 400
	AuthErrCode    = 401
	PermErrCode    = 403
	NotFoundCode   = 404
	ServiceErrCode = 500
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success        = NewErrNo(SuccessCode, "Success")
	ParamErr       = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	ErrBind        = NewErrNo(ParamErrCode, "Failed to bind request body")
	AuthErr        = NewErrNo(AuthErrCode, "Authentication failed")
	TokenInvalid   = NewErrNo(AuthErrCode, "Token is invalid or expired")
	PermissionErr  = NewErrNo(PermErrCode, "No permission to operate this resource")
	NotFoundErr    = NewErrNo(NotFoundCode, "Resource not found")
	ServiceErr     = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	RedisErr       = NewErrNo(ServiceErrCode, "Redis is unable to handle this request")
	OssErr         = NewErrNo(ServiceErrCode, "Object storage is unable to handle this request")
	MQErr          = NewErrNo(ServiceErrCode, "Message queue is unable to handle this request")
)

// ConvertErr maps an arbitrary error onto an ErrNo. Wrapped ErrNo values
// come back as themselves, anything else is a ServiceErr carrying the
// original message.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	e := ErrNo{}
	if errors.As(err, &e) {
		return e
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
