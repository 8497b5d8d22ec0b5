package api

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/discovery-lambda/common"
	"github.com/cprates/discovery-lambda/pkg/handler"
	"github.com/cprates/discovery-lambda/pkg/params"
)

// gateway turns any HTTP request into an event, the way an HTTP API gateway does, and
// writes the function's response back.
func gateway(api *LambdaAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		reqID := common.ReqID(r.Context())

		headers := params.JoinLower(r.Header)
		if r.Host != "" {
			headers["host"] = r.Host
		}
		event := handler.Event{
			HTTPMethod: handler.String(r.Method),
			RawPath:    handler.String(r.URL.EscapedPath()),
			Headers:    headers,
		}

		ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{
			AwsRequestID:       reqID,
			InvokedFunctionArn: api.functionArn,
		})

		res, err := api.invoker.Invoke(ctx, event)
		if err != nil {
			log.Errorln("Function failed,", reqID, err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"message":"Internal Server Error"}`)
			return
		}

		body := []byte(res.Body)
		if res.IsBase64Encoded {
			body, err = base64.StdEncoding.DecodeString(res.Body)
			if err != nil {
				log.Errorln("Invalid base64 body,", reqID, err)
				w.WriteHeader(http.StatusBadGateway)
				return
			}
		}

		for k, v := range res.Headers {
			w.Header().Set(k, v)
		}
		for k, vs := range res.MultiValueHeaders {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}

		status := res.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)

		_, err = w.Write(body)
		if err != nil {
			log.Errorln("Unexpected error, request", reqID, err)
		}
	}
}
