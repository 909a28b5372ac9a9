package domain

import "fmt"

// ConfigurationError signals a missing or placeholder credential. It marks a
// deployment problem, never a user error, and is not retried.
type ConfigurationError struct {
	Service string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s configuration error", e.Service)
}

// RateLimitedError is raised after a provider rate limit. RetryAfter carries
// the provider hint in seconds, defaulting to "60".
type RateLimitedError struct {
	Service    string
	RetryAfter string
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s rate limited, retry after %ss", e.Service, e.RetryAfter)
}

// ServiceUnavailableError covers provider 5xx responses and request timeouts
// that survived the retry budget.
type ServiceUnavailableError struct {
	Service string
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("%s temporarily unavailable", e.Service)
}

// TimeoutError is raised when a provider call exceeds its deadline on every
// retry attempt.
type TimeoutError struct {
	Service string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timeout", e.Service)
}

// ConnectionError is raised after transport-level failures exhaust retries.
type ConnectionError struct {
	Service string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s connection error", e.Service)
}

// BadRequestError covers non-retriable client-side provider rejections.
type BadRequestError struct {
	Service string
	Detail  string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%s bad request: %s", e.Service, e.Detail)
}

// ContentPolicyError is raised when the provider refuses content on policy
// grounds; retrying the same payload cannot succeed.
type ContentPolicyError struct {
	Service string
}

func (e *ContentPolicyError) Error() string {
	return fmt.Sprintf("%s rejected content due to policy restrictions", e.Service)
}

// ResponseFormatError signals a provider contract violation: a 200 response
// whose body lacks the expected structure.
type ResponseFormatError struct {
	Service string
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("%s response format error", e.Service)
}

// InvalidInputError reports caller-supplied data that failed validation. It
// is surfaced immediately, never retried and never masked by a fallback.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return e.Detail
}
