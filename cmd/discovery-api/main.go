package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/discovery-lambda/pkg/config"
	"github.com/cprates/discovery-lambda/pkg/handler"
	"github.com/cprates/discovery-lambda/pkg/logging"
)

func main() {
	cfg, err := config.LoadHandler()
	if err != nil {
		log.Fatalln("Failed to load config,", err)
	}
	if err := logging.Setup(cfg.Debug, "json"); err != nil {
		log.Fatalln("Failed to set up logging,", err)
	}

	h := handler.New(handler.Config{ServiceName: cfg.ServiceName})
	lambda.Start(h.Invoke)
}
