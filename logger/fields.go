package logger

// Standard field key constants for structured logging.
const (
	FieldComponent    = "component"
	FieldOperation    = "operation"
	FieldRequestID    = "request_id"
	FieldJobName      = "job_name"
	FieldJobStatus    = "job_status"
	FieldTranscriptID = "transcript_id"
	FieldSummaryID    = "summary_id"
	FieldSource       = "source"
	FieldEmail        = "email"
	FieldError        = "error"
	FieldDuration     = "duration_ms"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Fields("job_name", name, "status", status)
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}
