package api

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cprates/discovery-lambda/common"
	"github.com/cprates/discovery-lambda/pkg/config"
	"github.com/cprates/discovery-lambda/pkg/handler"
)

// Invoker runs the function for one event.
type Invoker interface {
	Invoke(ctx context.Context, event handler.Event) (events.APIGatewayProxyResponse, error)
}

// LambdaAPI serves a single function the way the invoking platform would.
type LambdaAPI struct {
	invoker      Invoker
	functionName string
	functionArn  string
	region       string
	accountID    string
}

// Install registers the Lambda Invoke API and, as a catch-all, an HTTP gateway in front of
// the function.
func Install(router *mux.Router, cfg config.Config, invoker Invoker) {

	log.Println("Installing Lambda service for", cfg.FunctionArn())

	api := &LambdaAPI{
		invoker:      invoker,
		functionName: cfg.Function.Name,
		functionArn:  cfg.FunctionArn(),
		region:       cfg.Service.Region,
		accountID:    cfg.Service.AccountID,
	}

	router.Use(withRequestID)

	root := "/2015-03-31/functions"
	router.HandleFunc(
		root+"/{FunctionName}/invocations",
		invokeFunction(api),
	).Methods(http.MethodPost)
	router.PathPrefix("/").HandlerFunc(gateway(api))
}

// owns tells whether ref names the function served by api. Account and region are only
// checked when ref carries them.
func (api *LambdaAPI) owns(ref funcRef) bool {
	return ref.name == api.functionName &&
		(ref.account == "" || ref.account == api.accountID) &&
		(ref.region == "" || ref.region == api.region)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := uuid.NewRandom()
		if err != nil {
			onLambdaInternalError(err.Error(), w)
			log.Errorln("Unexpected error", err)
			return
		}
		reqID := u.String()

		log.Debugf("Req %s %q, %s", r.Method, r.RequestURI, reqID)

		w.Header().Set("X-Amzn-RequestId", reqID)
		ctx := context.WithValue(r.Context(), common.ReqIDKey{}, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
