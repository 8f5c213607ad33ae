package utils

import "bloomfundr-api/internal/constant"

// Unified response envelope.
type Response struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg"`
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func Success(data interface{}) Response {
	return Response{
		Code: constant.CodeSuccess,
		Msg:  "success",
		Data: data,
	}
}

// Error builds a response from a registered error code.
func Error(code int) Response {
	if msg, exists := constant.GetErrorMessage(code); exists {
		return Response{Code: code, Msg: msg}
	}
	return Response{Code: code, Msg: "unknown error"}
}

func ErrorWithData(code int, data interface{}) Response {
	r := Error(code)
	r.Data = data
	return r
}

func ErrorWithTrace(code int, traceID string) Response {
	r := Error(code)
	r.TraceID = traceID
	return r
}

// CustomError carries a free-form message, e.g. validation detail.
func CustomError(code int, message string) Response {
	return Response{Code: code, Msg: message}
}
