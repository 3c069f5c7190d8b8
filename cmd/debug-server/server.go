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

package debugserver

import (
	"context"
	"errors"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/debug"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/log"
	dpb "github.com/MSM7x27A-Sources/android-hardware/pkg/pb/debug"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/property"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type debugServer struct {
	logger  *log.Logger
	handler *debug.Handler
	store   property.Store
}

var _ dpb.DebugServiceServer = &debugServer{}

func newDebugServer(logger *log.Logger, handler *debug.Handler, store property.Store) *debugServer {
	return &debugServer{
		logger:  logger,
		handler: handler,
		store:   store,
	}
}

func (d *debugServer) SetDebug(ctx context.Context, req *dpb.SetDebugRequest) (*dpb.SetDebugResponse, error) {
	if req.VerboseLevel < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "negative verbose level %d", req.VerboseLevel)
	}

	if req.Tag == "all" {
		d.handler.DebugAll(req.Enable, int(req.VerboseLevel))
		d.logger.Infof("debug all: enable=%t verbose=%d", req.Enable, req.VerboseLevel)
		return &dpb.SetDebugResponse{}, nil
	}

	tag, err := debug.ParseTag(req.Tag)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if tag == debug.TagNone {
		return nil, status.Errorf(codes.InvalidArgument, "tag %s cannot be toggled", tag)
	}

	d.handler.SetTag(tag, req.Enable, int(req.VerboseLevel))
	d.logger.Infof("debug %s: enable=%t verbose=%d", tag, req.Enable, req.VerboseLevel)
	return &dpb.SetDebugResponse{}, nil
}

func (d *debugServer) GetState(ctx context.Context, req *dpb.GetStateRequest) (*dpb.GetStateResponse, error) {
	state := d.handler.State()
	mask := state.Mask()

	var names []string
	for _, t := range debug.Tags() {
		if mask.Has(t) {
			names = append(names, t.String())
		}
	}
	return &dpb.GetStateResponse{
		Mask:         uint32(mask),
		VerboseLevel: int32(state.Verbose()),
		EnabledTags:  names,
	}, nil
}

func (d *debugServer) GetProperty(ctx context.Context, req *dpb.GetPropertyRequest) (*dpb.GetPropertyResponse, error) {
	value, err := d.handler.PropertyString(req.Key)
	if errors.Is(err, debug.ErrNotSupported) {
		return nil, status.Errorf(codes.NotFound, "property %q not set", req.Key)
	} else if err != nil {
		return nil, err
	}
	return &dpb.GetPropertyResponse{Value: value}, nil
}

func (d *debugServer) SetProperty(ctx context.Context, req *dpb.SetPropertyRequest) (*dpb.SetPropertyResponse, error) {
	if err := d.handler.SetProperty(req.Key, req.Value); err != nil {
		d.logger.Warnf("rejected property %q: %v", req.Key, err)
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	d.logger.Debugf("set property %q=%q", req.Key, req.Value)
	return &dpb.SetPropertyResponse{}, nil
}

func (d *debugServer) ListProperties(ctx context.Context, req *dpb.ListPropertiesRequest) (*dpb.ListPropertiesResponse, error) {
	keys := d.store.Keys(req.Prefix)
	props := make([]*dpb.Property, 0, len(keys))
	for _, k := range keys {
		v, ok := d.store.Get(k)
		if !ok {
			continue
		}
		props = append(props, &dpb.Property{Key: k, Value: v})
	}
	return &dpb.ListPropertiesResponse{Properties: props}, nil
}
