// Package swgrpc has a unary server interceptor that gives every gRPC call its
// own Stopwatch and sends its timers to Honeycomb when the call returns.
package swgrpc

import (
	"context"

	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/stopwatch-go/wrappers/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// addFields adds available information about a gRPC request to req.
func addFields(ctx context.Context, info *grpc.UnaryServerInfo, req *common.Request) {
	req.AddField("meta.type", "grpc_request")
	req.AddField("handler.method", info.FullMethod)

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val, ok := md["content-type"]; ok && len(val) > 0 {
			req.AddField("request.content_type", val[0])
		}
		if val, ok := md[":authority"]; ok && len(val) > 0 {
			req.AddField("request.header.authority", val[0])
		}
		if val, ok := md["user-agent"]; ok && len(val) > 0 {
			req.AddField("request.header.user_agent", val[0])
		}
	}
}

// UnaryServerInterceptor times each call under its full method name. The
// handler finds the call's Stopwatch with stopwatch.FromContext.
func UnaryServerInterceptor(builder *libhoney.Builder) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		request interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		ctx, req := common.StartContext(ctx)
		addFields(ctx, info, req)

		var resp interface{}
		var err error
		req.Time(info.FullMethod, func() { resp, err = handler(ctx, request) })
		if err != nil {
			req.AddField("handler_error", err.Error())
		}
		req.AddField("response.grpc_status_code", status.Code(err).String())
		req.Finish(builder)
		return resp, err
	}
}
