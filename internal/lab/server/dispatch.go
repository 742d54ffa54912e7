package server

import (
	"context"
	"encoding/json"
	"sort"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
	"github.com/algebralab/algebralab/internal/lab/service"
)

// Method names. gRPC serves them as /algebralab.v1.Lab/<name>; the
// WebSocket endpoint uses them as envelope types.
const (
	MethodDivide         = "Divide"
	MethodConvertComplex = "ConvertComplex"
	MethodSolveLinear    = "SolveLinear"
	MethodSolveFormula   = "SolveFormula"
	MethodIsolate        = "Isolate"
	MethodEvaluate       = "Evaluate"
	MethodNotableProduct = "NotableProduct"
	MethodClassify       = "Classify"
	MethodTranslate      = "Translate"
	MethodHistory        = "History"
)

// handlerFunc decodes a JSON payload, runs one service call and returns
// the response value.
type handlerFunc func(ctx context.Context, svc *service.Service, payload []byte) (interface{}, error)

var methods = map[string]handlerFunc{
	MethodDivide:         bind((*service.Service).Divide),
	MethodConvertComplex: bind((*service.Service).ConvertComplex),
	MethodSolveLinear:    bind((*service.Service).SolveLinear),
	MethodSolveFormula:   bind((*service.Service).SolveFormula),
	MethodIsolate:        bind((*service.Service).Isolate),
	MethodEvaluate:       bind((*service.Service).Evaluate),
	MethodNotableProduct: bind((*service.Service).NotableProduct),
	MethodClassify:       bind((*service.Service).Classify),
	MethodTranslate:      bind((*service.Service).Translate),
	MethodHistory:        bind((*service.Service).History),
}

func bind[Req, Resp any](fn func(*service.Service, context.Context, *Req) (*Resp, error)) handlerFunc {
	return func(ctx context.Context, svc *service.Service, payload []byte) (interface{}, error) {
		req := new(Req)
		if len(payload) > 0 && string(payload) != "null" {
			if err := json.Unmarshal(payload, req); err != nil {
				return nil, mdwerror.Wrap(err, "invalid payload").
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("server.decode")
			}
		}
		resp, err := fn(svc, ctx, req)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}
}

// Methods returns the method names in alphabetical order.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dispatch runs the named method with a JSON payload.
func dispatch(ctx context.Context, svc *service.Service, method string, payload []byte) (interface{}, error) {
	h, ok := methods[method]
	if !ok {
		return nil, mdwerror.New("unknown method " + method).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("server.dispatch")
	}
	return h(ctx, svc, payload)
}
