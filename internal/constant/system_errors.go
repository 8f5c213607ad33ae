package constant

// System error codes (1xxx)
const (
	CodeSuccess            = 0    // request processed successfully
	CodeSystemError        = 1000 // unexpected internal error
	CodeDatabaseError      = 1001 // database failure: connection, query, transaction
	CodeRedisError         = 1002 // cache failure: connection, read/write timeout
	CodeInternalError      = 1003 // business logic hit an unexpected state
	CodeServiceUnavailable = 1004 // temporarily unavailable (maintenance, overload)
	CodeTimeout            = 1005 // request not completed in time
	CodeDuplicateRequest   = 1006 // same request re-submitted within the dedupe window
)

// Parameter error codes (11xx)
const (
	CodeInvalidParams     = 1100 // request params malformed
	CodeMissingParams     = 1101 // required field absent
	CodeParamsRangeError  = 1102 // value outside the allowed range
	CodeParamsFormatError = 1103 // value format invalid (date, number, percent)
)

// Auth error codes (12xx)
const (
	CodeUnauthorized   = 1200 // missing or invalid credentials
	CodeSignatureError = 1201 // body or webhook signature mismatch
	CodeAccessDenied   = 1202 // authenticated but not allowed
	CodeStaleRequest   = 1203 // request timestamp outside the freshness window
)
