package llm

import "fmt"

// OracleErrorKind classifies declared oracle failures.
type OracleErrorKind string

// Oracle failure kinds.
const (
	OracleTimeout     OracleErrorKind = "timeout"
	OracleRateLimited OracleErrorKind = "rate-limited"
	OracleMalformed   OracleErrorKind = "malformed-response"
	OracleFailed      OracleErrorKind = "failed"
)

// OracleError is a declared failure from the oracle boundary. Callers retry
// within their attempt budget and then surface a flagged draft; an oracle
// failure is never silently dropped.
type OracleError struct {
	Kind  OracleErrorKind
	Cause error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Kind, e.Cause)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}
