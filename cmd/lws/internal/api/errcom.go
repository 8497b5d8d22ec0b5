package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/cprates/discovery-lambda/pkg/lerr"
)

func onLambdaErr(w http.ResponseWriter, e lerr.Result) {

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Amzn-ErrorType", e.Code)
	w.WriteHeader(e.Status)
	if err := e.Encode(w); err != nil {
		log.Debugln(err)
	}
}

func onLambdaInternalError(message string, w http.ResponseWriter) {
	onLambdaErr(w, lerr.New(http.StatusInternalServerError, lerr.Service, message))
}

func onLambdaInvalidParameterValue(message string, w http.ResponseWriter) {
	onLambdaErr(w, lerr.New(http.StatusBadRequest, lerr.InvalidParameterValue, message))
}

func onLambdaInvalidRequestContent(message string, w http.ResponseWriter) {
	onLambdaErr(w, lerr.New(http.StatusBadRequest, lerr.InvalidRequestContent, message))
}

func onLambdaNotFound(message string, w http.ResponseWriter) {
	onLambdaErr(w, lerr.New(http.StatusNotFound, lerr.ResourceNotFound, message))
}
