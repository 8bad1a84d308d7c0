package response

import (
	"errors"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
)

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New keeps data non-null on the wire.
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error builds a failure envelope; customMsg overrides the default.
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// FromError maps a domain failure kind onto an envelope. Unrecognized
// kinds are opaque server errors.
func FromError(err error) Resp {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return Error(CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return Error(CodeConflict, err.Error())
	default:
		return Error(CodeServerError, err.Error())
	}
}
