package response

// Business codes follow HTTP semantics directly.
const (
	CodeOK             = 0
	CodeBadRequest     = 400
	CodeUnauthorized   = 401
	CodeForbidden      = 403
	CodeNotFound       = 404
	CodeConflict       = 409
	CodeServerError    = 500
	CodeBadGateway     = 502
	CodeGatewayTimeout = 504
)

// CodeMsgMap centralizes code -> default msg.
var CodeMsgMap = map[int]string{
	CodeOK:             "OK",
	CodeBadRequest:     "Bad Request",
	CodeUnauthorized:   "Unauthorized",
	CodeForbidden:      "Forbidden",
	CodeNotFound:       "Not Found",
	CodeConflict:       "Conflict",
	CodeServerError:    "Internal Server Error",
	CodeBadGateway:     "Bad Gateway",
	CodeGatewayTimeout: "Gateway Timeout",
}
