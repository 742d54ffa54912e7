package server

import (
	"context"
	"encoding/json"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
	"github.com/algebralab/algebralab/internal/lab/service"
	coreGrpc "github.com/algebralab/algebralab/pkg/core/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "algebralab.v1.Lab"

// LabServer is the server API of the Lab service. Every method takes and
// returns a google.protobuf.Struct holding the JSON form of the service
// request and response types.
type LabServer interface {
	Call(ctx context.Context, method string, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes the Lab service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LabServer)(nil),
	Methods:     methodDescs(),
	Streams:     []grpc.StreamDesc{},
	Metadata:    "algebralab/v1/lab.proto",
}

func methodDescs() []grpc.MethodDesc {
	var descs []grpc.MethodDesc
	for _, name := range Methods() {
		descs = append(descs, grpc.MethodDesc{MethodName: name, Handler: unaryHandler(name)})
	}
	return descs
}

func unaryHandler(method string) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return srv.(LabServer).Call(ctx, method, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(LabServer).Call(ctx, method, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// grpcHandler implements LabServer on top of the service.
type grpcHandler struct {
	service *service.Service
}

// Call runs one method. Errors carry the engine message and a status code
// derived from the error code.
func (h *grpcHandler) Call(ctx context.Context, method string, req *structpb.Struct) (*structpb.Struct, error) {
	payload, err := req.MarshalJSON()
	if err != nil {
		return nil, status.Error(coreGrpc.StatusCode(mdwerror.Wrap(err, "request").WithCode(mdwerror.CodeInvalidInput)), err.Error())
	}

	resp, err := dispatch(ctx, h.service, method, payload)
	if err != nil {
		return nil, status.Error(coreGrpc.StatusCode(err), service.Message(err))
	}
	return toStruct(resp)
}

// toStruct converts any JSON-encodable value to a Struct.
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return out, nil
}

// fromStruct decodes a Struct into v through its JSON form.
func fromStruct(s *structpb.Struct, v interface{}) error {
	data, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
