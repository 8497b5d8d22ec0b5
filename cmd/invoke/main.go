package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cprates/discovery-lambda/pkg/config"
	"github.com/cprates/discovery-lambda/pkg/handler"
	"github.com/cprates/discovery-lambda/pkg/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {

	fs := flag.NewFlagSet("invoke", flag.ContinueOnError)
	eventFile := fs.String("event", "-", "event file, .json, .yaml or .yml; - reads stdin as JSON")
	configDir := fs.String("config", ".", "directory holding config.yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Debug, cfg.LogFormat); err != nil {
		return err
	}

	var in io.Reader = stdin
	if *eventFile != "-" {
		f, err := os.Open(*eventFile)
		if err != nil {
			return fmt.Errorf("opening event: %w", err)
		}
		defer f.Close()
		in = f
	}

	event, err := readEvent(in, *eventFile)
	if err != nil {
		return err
	}

	u, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID:       u.String(),
		InvokedFunctionArn: cfg.FunctionArn(),
	})

	h := handler.New(handler.Config{ServiceName: cfg.ServiceName})
	res, err := h.Invoke(ctx, event)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// readEvent decodes YAML when name has a YAML extension, JSON otherwise. Empty input is an
// empty event.
func readEvent(r io.Reader, name string) (handler.Event, error) {

	var event handler.Event

	buf, err := io.ReadAll(r)
	if err != nil {
		return event, fmt.Errorf("reading event: %w", err)
	}
	if len(strings.TrimSpace(string(buf))) == 0 {
		return event, nil
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(buf, &event)
	default:
		err = json.Unmarshal(buf, &event)
	}
	if err != nil {
		return event, fmt.Errorf("decoding event %s: %w", name, err)
	}

	return event, nil
}
