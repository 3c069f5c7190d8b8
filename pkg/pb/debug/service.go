// Copyright 2018 The Kura Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package debug

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "sdm.debug.DebugService"

// DebugServiceClient is the client API for DebugService.
type DebugServiceClient interface {
	SetDebug(ctx context.Context, in *SetDebugRequest, opts ...grpc.CallOption) (*SetDebugResponse, error)
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	GetProperty(ctx context.Context, in *GetPropertyRequest, opts ...grpc.CallOption) (*GetPropertyResponse, error)
	SetProperty(ctx context.Context, in *SetPropertyRequest, opts ...grpc.CallOption) (*SetPropertyResponse, error)
	ListProperties(ctx context.Context, in *ListPropertiesRequest, opts ...grpc.CallOption) (*ListPropertiesResponse, error)
}

type debugServiceClient struct {
	cc *grpc.ClientConn
}

func NewDebugServiceClient(cc *grpc.ClientConn) DebugServiceClient {
	return &debugServiceClient{cc}
}

func (c *debugServiceClient) SetDebug(ctx context.Context, in *SetDebugRequest, opts ...grpc.CallOption) (*SetDebugResponse, error) {
	out := new(SetDebugResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/SetDebug", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *debugServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	out := new(GetStateResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *debugServiceClient) GetProperty(ctx context.Context, in *GetPropertyRequest, opts ...grpc.CallOption) (*GetPropertyResponse, error) {
	out := new(GetPropertyResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetProperty", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *debugServiceClient) SetProperty(ctx context.Context, in *SetPropertyRequest, opts ...grpc.CallOption) (*SetPropertyResponse, error) {
	out := new(SetPropertyResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/SetProperty", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *debugServiceClient) ListProperties(ctx context.Context, in *ListPropertiesRequest, opts ...grpc.CallOption) (*ListPropertiesResponse, error) {
	out := new(ListPropertiesResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/ListProperties", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DebugServiceServer is the server API for DebugService.
type DebugServiceServer interface {
	SetDebug(context.Context, *SetDebugRequest) (*SetDebugResponse, error)
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	GetProperty(context.Context, *GetPropertyRequest) (*GetPropertyResponse, error)
	SetProperty(context.Context, *SetPropertyRequest) (*SetPropertyResponse, error)
	ListProperties(context.Context, *ListPropertiesRequest) (*ListPropertiesResponse, error)
}

func RegisterDebugServiceServer(s *grpc.Server, srv DebugServiceServer) {
	s.RegisterService(&debugServiceDesc, srv)
}

// unaryHandler adapts a typed DebugServiceServer method to grpc's method
// handler signature, running it through the server's interceptor if any.
func unaryHandler[Req, Resp any](method string, call func(DebugServiceServer, context.Context, *Req) (*Resp, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DebugServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + serviceName + "/" + method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(DebugServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var debugServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DebugServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetDebug", Handler: unaryHandler("SetDebug", DebugServiceServer.SetDebug)},
		{MethodName: "GetState", Handler: unaryHandler("GetState", DebugServiceServer.GetState)},
		{MethodName: "GetProperty", Handler: unaryHandler("GetProperty", DebugServiceServer.GetProperty)},
		{MethodName: "SetProperty", Handler: unaryHandler("SetProperty", DebugServiceServer.SetProperty)},
		{MethodName: "ListProperties", Handler: unaryHandler("ListProperties", DebugServiceServer.ListProperties)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "debug.proto",
}
