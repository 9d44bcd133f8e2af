package trips

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing messages returned in error bodies. Stack traces stay in the
// server log.
const (
	MsgMissingFields      = "Missing required fields"
	MsgKeysNotConfigured  = "API keys not configured. Please set GROQ_API_KEY and UNSPLASH_ACCESS_KEY in your environment variables."
	MsgRateLimited        = "API rate limit exceeded. Please wait a few minutes and try again."
	MsgInvalidAPIKey      = "Invalid or missing API key. Please check your GROQ_API_KEY environment variable. Get a free API key at https://console.groq.com/"
	MsgGenerationFailed   = "Failed to generate travel plan"
	upstreamMessagePrefix = "Groq API error: "
)

// ErrMissingFields is returned by TripRequest.Validate and maps to a 400.
var ErrMissingFields = errors.New(MsgMissingFields)

// ErrEmptyCompletion is returned when the completion API answers without
// any usable message content.
var ErrEmptyCompletion = errors.New("No response from Groq API")

// ConfigurationError signals that one of the upstream credentials is
// missing. No outbound call is made when it is raised.
type ConfigurationError struct{}

func (e *ConfigurationError) Error() string {
	return "GROQ_API_KEY and UNSPLASH_ACCESS_KEY must be configured"
}

// UpstreamError carries the status and body of a non-success response
// from the completion API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s%d - %s", upstreamMessagePrefix, e.Status, e.Body)
}

// ParseError signals that the completion content could not be recovered
// as JSON by either the lenient or the strict pass.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse itinerary JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UserMessage classifies an error into the message returned to the
// client. Typed variants are matched first; anything untyped falls back
// to the substring tiers the original dispatcher used, with unrecognized
// messages surfaced verbatim.
func UserMessage(err error) string {
	if err == nil {
		return MsgGenerationFailed
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return MsgKeysNotConfigured
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		switch {
		case upstream.Status == 429,
			strings.Contains(upstream.Body, "quota"),
			strings.Contains(upstream.Body, "Quota exceeded"):
			return MsgRateLimited
		case upstream.Status == 401,
			upstream.Status == 403,
			strings.Contains(upstream.Body, "API key"):
			return MsgInvalidAPIKey
		}
		return strings.TrimSpace(fmt.Sprintf("%d - %s", upstream.Status, upstream.Body))
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "quota"),
		strings.Contains(msg, "Quota exceeded"),
		strings.Contains(msg, "429"):
		return MsgRateLimited
	case strings.Contains(msg, "API key"),
		strings.Contains(msg, "401"),
		strings.Contains(msg, "403"):
		return MsgInvalidAPIKey
	case strings.HasPrefix(msg, upstreamMessagePrefix):
		return strings.TrimPrefix(msg, upstreamMessagePrefix)
	}
	return msg
}
