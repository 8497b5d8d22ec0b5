package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultServiceName is reported when no service name is configured.
	DefaultServiceName = "api-service"
	// Message is the greeting carried by every response body.
	Message = "Hello from Lambda!"
	// TimestampLayout is ISO-8601 in UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

var responseHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
}

// Config holds everything the Handler needs, resolved before it is built.
type Config struct {
	ServiceName string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Handler answers invocation events with a description of itself. It holds no mutable
// state and is safe for concurrent use.
type Handler struct {
	serviceName string
	now         func() time.Time
}

// New returns a Handler for the given configuration.
func New(cfg Config) *Handler {

	h := &Handler{
		serviceName: cfg.ServiceName,
		now:         cfg.Now,
	}
	if h.serviceName == "" {
		h.serviceName = DefaultServiceName
	}
	if h.now == nil {
		h.now = time.Now
	}

	return h
}

// ServiceName returns the resolved service name.
func (h *Handler) ServiceName() string {
	return h.serviceName
}

// Handle builds the response for one event. Absent event fields are echoed as null.
func (h *Handler) Handle(event Event) (events.APIGatewayProxyResponse, error) {

	body := Body{
		Message:   Message,
		Service:   h.serviceName,
		Timestamp: h.now().UTC().Format(TimestampLayout),
		Event: EventEcho{
			HTTPMethod: event.HTTPMethod,
			Path:       event.RawPath,
			Headers:    event.Headers,
		},
	}

	buf, err := encodeBody(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    Headers(),
		Body:       string(buf),
	}, nil
}

// Invoke is the entry point handed to the Lambda runtime.
func (h *Handler) Invoke(ctx context.Context, event Event) (events.APIGatewayProxyResponse, error) {

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log.WithFields(log.Fields{
			"requestId": lc.AwsRequestID,
			"function":  lc.InvokedFunctionArn,
		}).Debugln("Handling request")
	}

	return h.Handle(event)
}

// Headers returns a fresh copy of the headers sent with every response.
func Headers() map[string]string {
	h := make(map[string]string, len(responseHeaders))
	for k, v := range responseHeaders {
		h[k] = v
	}
	return h
}

func encodeBody(b Body) ([]byte, error) {

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("encoding response body: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
