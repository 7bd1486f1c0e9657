package generator

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// LLMClient 抽象补全服务，便于替换/Mock。一次调用只发送一次请求。
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	// Timeout of zero keeps the SDK default.
	Timeout time.Duration
}

// ErrEmptyReply is returned when the service answers without any choice.
var ErrEmptyReply = errors.New("completion service returned no choices")

// GatewayError wraps any failure of the completion call: transport, auth,
// rate limit or a malformed response.
type GatewayError struct {
	Kind Kind
	// StatusCode is the HTTP status reported by the service, zero for transport failures.
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("completion failed: %v", e.Err)
	}
	return fmt.Sprintf("completion failed (%s): %v", e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Detail is the underlying message shown to users.
func (e *GatewayError) Detail() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

// asGatewayError normalizes whatever a client returned into a *GatewayError.
func asGatewayError(kind Kind, err error) *GatewayError {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		if gwErr.Kind == "" {
			return &GatewayError{Kind: kind, StatusCode: gwErr.StatusCode, Err: gwErr.Err}
		}
		return gwErr
	}
	return &GatewayError{Kind: kind, Err: err}
}
