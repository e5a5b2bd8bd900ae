package ctxutil

import "context"

type requestIDsKey struct{}

// RequestIDs identifies one API request across logs, traces and responses.
type RequestIDs struct {
	TraceID   string
	RequestID string
}

func WithRequestIDs(ctx context.Context, ids RequestIDs) context.Context {
	return context.WithValue(ctx, requestIDsKey{}, ids)
}

func GetRequestIDs(ctx context.Context) (RequestIDs, bool) {
	if ctx == nil {
		return RequestIDs{}, false
	}
	ids, ok := ctx.Value(requestIDsKey{}).(RequestIDs)
	return ids, ok
}

// LogFields returns the non-empty ids of ctx as logger key/value pairs.
func LogFields(ctx context.Context) []interface{} {
	ids, ok := GetRequestIDs(ctx)
	if !ok {
		return nil
	}
	var out []interface{}
	if ids.RequestID != "" {
		out = append(out, "request_id", ids.RequestID)
	}
	if ids.TraceID != "" {
		out = append(out, "trace_id", ids.TraceID)
	}
	return out
}
