package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cprates/discovery-lambda/pkg/handler"
)

func TestReadEvent(t *testing.T) {
	expected := handler.Event{
		HTTPMethod: handler.String("GET"),
		RawPath:    handler.String("/status"),
		Headers:    map[string]string{"x-test": "1"},
	}

	tests := []struct {
		name     string
		file     string
		input    string
		expected handler.Event
		wantErr  bool
	}{
		{"json", "event.json", `{"httpMethod":"GET","rawPath":"/status","headers":{"x-test":"1"}}`, expected, false},
		{"stdin is json", "-", `{"httpMethod":"GET","rawPath":"/status","headers":{"x-test":"1"}}`, expected, false},
		{"yaml", "event.yaml", "httpMethod: GET\nrawPath: /status\nheaders:\n  x-test: \"1\"\n", expected, false},
		{"yml", "EVENT.YML", "httpMethod: GET\nrawPath: /status\nheaders:\n  x-test: \"1\"\n", expected, false},
		{"empty", "event.json", "  \n", handler.Event{}, false},
		{"broken json", "event.json", "{", handler.Event{}, true},
		{"broken yaml", "event.yaml", "headers: [", handler.Event{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := readEvent(strings.NewReader(tt.input), tt.file)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, event)
		})
	}
}

func TestRun(t *testing.T) {
	t.Setenv("SERVICE_NAME", "discovery-api")

	dir := t.TempDir()
	eventFile := filepath.Join(dir, "event.yaml")
	require.NoError(t, os.WriteFile(eventFile, []byte("httpMethod: GET\nrawPath: /status\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-event", eventFile, "-config", dir}, strings.NewReader(""), &out))

	var res events.APIGatewayProxyResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, handler.Headers(), res.Headers)

	var body handler.Body
	require.NoError(t, json.Unmarshal([]byte(res.Body), &body))
	assert.Equal(t, "discovery-api", body.Service)
	assert.Equal(t, handler.EventEcho{
		HTTPMethod: handler.String("GET"),
		Path:       handler.String("/status"),
	}, body.Event)
}

func TestRun_MissingFile(t *testing.T) {
	err := run([]string{"-event", filepath.Join(t.TempDir(), "nope.json"), "-config", t.TempDir()},
		strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening event")
}
