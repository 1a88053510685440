package weather

import "fmt"

// ConnectivityError means the network or the provider could not be reached.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("could not reach %s", e.URL)
	}
	return fmt.Sprintf("could not reach %s: %v", e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// ProviderError is a non-success status reported in the provider's response
// body. Message is the provider's own text.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather provider returned status %s", e.Code)
	}
	return e.Message
}

// DecodeError means the response body did not have the expected shape.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "unexpected weather response: " + e.Reason
	}
	return fmt.Sprintf("unexpected weather response: %s: %v", e.Reason, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
