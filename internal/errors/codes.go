package errors

type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL_ERROR"

	// Construction contract violations.
	CodeTooManyPositionalArgs Code = "TOO_MANY_POSITIONAL_ARGS"
	CodeUnknownArgument       Code = "UNKNOWN_ARGUMENT"
	CodeMissingIdentifier     Code = "MISSING_IDENTIFIER"

	// Descriptor / registry conditions.
	CodeDescriptorInvalid Code = "DESCRIPTOR_INVALID"
	CodeVariantNotFound   Code = "VARIANT_NOT_FOUND"

	// Client factory conditions.
	CodeServiceNotSupported Code = "SERVICE_NOT_SUPPORTED"
	CodeClientFactoryError  Code = "CLIENT_FACTORY_ERROR"

	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodeResourceNotFound  Code = "RESOURCE_NOT_FOUND"
)

func (c Code) String() string {
	return string(c)
}
