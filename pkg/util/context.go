package util

import (
	"context"

	"github.com/google/uuid"
)

type FieldsFromContext struct{}

type key string

const (
	requestIDKey = key("x-request-id")
	clientIPKey  = key("x-forwarded-for")
)

// Fields returns a map of the key-value pairs that this library has set into `context`.
func (f *FieldsFromContext) Fields(ctx context.Context) map[string]interface{} {
	mapFields := make(map[string]interface{})
	mapFields["request_id"] = GetRequestID(ctx)
	mapFields["client_ip"] = GetClientIP(ctx)

	return mapFields
}

// WithRequestID returns a context with a request id.
// It will generate a new request id if the provided id is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return context.WithValue(ctx, requestIDKey, generate())
	}

	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns request id from context
// will return empty string if not present
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP returns a context with a client ip
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP returns client ip from context
// will return empty string if not present
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// generate returns a uuid-v4 string to use as request id
func generate() string {
	return uuid.NewString()
}
