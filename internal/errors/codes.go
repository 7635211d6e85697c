package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeArgument         Code = "ARGUMENT_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	// Remote API
	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodePlatformThrottled Code = "PLATFORM_THROTTLED"
	CodeStackNotFound     Code = "STACK_NOT_FOUND"

	// Polling
	CodeEventsFetchError    Code = "EVENTS_FETCH_ERROR"
	CodeResourcesFetchError Code = "RESOURCES_FETCH_ERROR"
	CodeTimestampParseError Code = "TIMESTAMP_PARSE_ERROR"
)

func (c Code) String() string {
	return string(c)
}

// IsFetchCode reports whether c is one of the per-tick fetch failure codes.
func (c Code) IsFetchCode() bool {
	return c == CodeEventsFetchError || c == CodeResourcesFetchError
}
