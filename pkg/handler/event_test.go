package handler

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestDecodeEvent(t *testing.T) {

	testsSet := []struct {
		description string
		json        string
		yaml        string
		//
		expected Event
	}{
		{
			"Tests an HTTP API payload",
			`{"version":"2.0","rawPath":"/status","httpMethod":"GET","headers":{"x-test":"1"},` +
				`"requestContext":{"http":{"method":"GET"}}}`,
			"version: \"2.0\"\nrawPath: /status\nhttpMethod: GET\nheaders:\n  x-test: \"1\"\n",
			Event{
				HTTPMethod: String("GET"),
				RawPath:    String("/status"),
				Headers:    map[string]string{"x-test": "1"},
			},
		},
		{
			"Tests a REST API payload has no raw path",
			`{"httpMethod":"POST","path":"/items","headers":{}}`,
			"httpMethod: POST\npath: /items\nheaders: {}\n",
			Event{HTTPMethod: String("POST"), Headers: map[string]string{}},
		},
		{
			"Tests an empty event",
			`{}`,
			"{}\n",
			Event{},
		},
	}

	for _, test := range testsSet {
		var fromJSON, fromYAML Event

		if err := json.Unmarshal([]byte(test.json), &fromJSON); err != nil {
			t.Errorf("%s. Unexpected JSON error: %s", test.description, err)
			continue
		}
		if err := yaml.Unmarshal([]byte(test.yaml), &fromYAML); err != nil {
			t.Errorf("%s. Unexpected YAML error: %s", test.description, err)
			continue
		}

		if diff := cmp.Diff(test.expected, fromJSON); diff != "" {
			t.Errorf("%s. JSON mismatch (-want +got):\n%s", test.description, diff)
		}
		if diff := cmp.Diff(test.expected, fromYAML); diff != "" {
			t.Errorf("%s. YAML mismatch (-want +got):\n%s", test.description, diff)
		}
	}
}
