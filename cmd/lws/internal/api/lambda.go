package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/discovery-lambda/common"
	"github.com/cprates/discovery-lambda/pkg/handler"
	"github.com/cprates/discovery-lambda/pkg/params"
)

const executedVersion = "$LATEST"

var invocationTypes = []string{"RequestResponse", "DryRun"}

// functionError is the payload returned when the function itself fails.
type functionError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

// invokeFunction serves the Lambda Invoke API for synchronous invocations.
func invokeFunction(api *LambdaAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		reqID := common.ReqID(r.Context())

		nameParam := params.ValString("FunctionName", mux.Vars(r))
		ref, ok := parseFuncName(nameParam)
		if !ok {
			onLambdaInvalidParameterValue("invalid FunctionName: "+nameParam, w)
			return
		}
		if !api.owns(ref) {
			onLambdaNotFound("Function not found: "+nameParam, w)
			return
		}

		query := params.Flatten(r.URL.Query())
		qualifier, present := query["Qualifier"]
		if present && (len(qualifier) < 1 || len(qualifier) > 128) {
			onLambdaInvalidParameterValue("Qualifier must be between 1 and 128 characters", w)
			return
		}
		if ref.qualifier != "" {
			if present && qualifier != ref.qualifier {
				onLambdaInvalidParameterValue(
					"The derived qualifier from the function name does not match the specified qualifier.",
					w,
				)
				return
			}
			qualifier = ref.qualifier
		}
		// only the unpublished version exists
		if qualifier != "" && qualifier != executedVersion {
			onLambdaNotFound("Function not found: "+api.functionArn+":"+qualifier, w)
			return
		}

		headers := params.Flatten(r.Header)
		invocationType, err := params.ValOneOf(
			"X-Amz-Invocation-Type", "RequestResponse", invocationTypes, headers,
		)
		if err != nil {
			onLambdaInvalidParameterValue(err.Error(), w)
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			onLambdaInternalError(err.Error(), w)
			log.Errorln("Failed to read body,", reqID, err)
			return
		}

		var event handler.Event
		if len(bytes.TrimSpace(payload)) > 0 {
			if err := json.Unmarshal(payload, &event); err != nil {
				onLambdaInvalidRequestContent(
					"Could not parse request body into json: "+err.Error(), w,
				)
				return
			}
		}

		if invocationType == "DryRun" {
			w.Header().Set("X-Amz-Executed-Version", executedVersion)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		log.Debugf("Invoking function %q, %s", ref.name, reqID)

		ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{
			AwsRequestID:       reqID,
			InvokedFunctionArn: api.functionArn,
		})

		var resPayload interface{}
		res, err := api.invoker.Invoke(ctx, event)
		if err != nil {
			log.Errorln("Function failed,", reqID, err)
			w.Header().Set("X-Amz-Function-Error", "Unhandled")
			resPayload = functionError{ErrorMessage: err.Error(), ErrorType: "errorString"}
		} else {
			resPayload = res
		}

		buf, err := json.Marshal(resPayload)
		if err != nil {
			onLambdaInternalError(err.Error(), w)
			log.Errorln(reqID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Amz-Executed-Version", executedVersion)
		w.WriteHeader(http.StatusOK)

		_, err = w.Write(buf)
		if err != nil {
			log.Errorln("Unexpected error, request", reqID, err)
		}
	}
}

// funcRef is a function reference as accepted by the Invoke API. Empty fields were not
// part of the reference.
type funcRef struct {
	name      string
	region    string
	account   string
	qualifier string
}

// parseFuncName accepts a function name, a partial ARN or a full ARN, each optionally
// followed by a version or alias qualifier.
func parseFuncName(s string) (ref funcRef, ok bool) {
	parts := strings.Split(s, ":")

	switch len(parts) {
	case 1, 2:
		// Function name - my-function[:qualifier]
		ref.name = parts[0]
		if len(parts) == 2 {
			ref.qualifier = parts[1]
		}
	case 3, 4:
		// Partial ARN - 123456789012:function:my-function[:qualifier]
		if parts[1] != "function" {
			return
		}
		ref.account = parts[0]
		ref.name = parts[2]
		if len(parts) == 4 {
			ref.qualifier = parts[3]
		}
	case 7, 8:
		// Function ARN - arn:aws:lambda:us-west-2:123456789012:function:my-function[:qualifier]
		if parts[0] != "arn" || parts[2] != "lambda" || parts[5] != "function" {
			return
		}
		ref.region = parts[3]
		ref.account = parts[4]
		ref.name = parts[6]
		if len(parts) == 8 {
			ref.qualifier = parts[7]
		}
	default:
		return
	}

	if len(ref.name) == 0 || len(ref.name) > 64 {
		return
	}
	if len(parts)%2 == 0 && ref.qualifier == "" {
		// trailing colon
		return
	}

	ok = true
	return
}
