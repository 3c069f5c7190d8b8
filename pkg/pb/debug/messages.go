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

// Package debug holds the wire messages and gRPC bindings for debug.proto.
// The messages follow the layout protoc-gen-go emits for golang/protobuf and
// are marshalled through its reflection path.
package debug

import (
	proto "github.com/golang/protobuf/proto"
)

type SetDebugRequest struct {
	Tag          string `protobuf:"bytes,1,opt,name=tag,proto3" json:"tag,omitempty"`
	Enable       bool   `protobuf:"varint,2,opt,name=enable,proto3" json:"enable,omitempty"`
	VerboseLevel int32  `protobuf:"varint,3,opt,name=verbose_level,json=verboseLevel,proto3" json:"verbose_level,omitempty"`
}

func (m *SetDebugRequest) Reset()         { *m = SetDebugRequest{} }
func (m *SetDebugRequest) String() string { return proto.CompactTextString(m) }
func (*SetDebugRequest) ProtoMessage()    {}

func (m *SetDebugRequest) GetTag() string {
	if m != nil {
		return m.Tag
	}
	return ""
}

func (m *SetDebugRequest) GetEnable() bool {
	if m != nil {
		return m.Enable
	}
	return false
}

func (m *SetDebugRequest) GetVerboseLevel() int32 {
	if m != nil {
		return m.VerboseLevel
	}
	return 0
}

type SetDebugResponse struct{}

func (m *SetDebugResponse) Reset()         { *m = SetDebugResponse{} }
func (m *SetDebugResponse) String() string { return proto.CompactTextString(m) }
func (*SetDebugResponse) ProtoMessage()    {}

type GetStateRequest struct{}

func (m *GetStateRequest) Reset()         { *m = GetStateRequest{} }
func (m *GetStateRequest) String() string { return proto.CompactTextString(m) }
func (*GetStateRequest) ProtoMessage()    {}

type GetStateResponse struct {
	Mask         uint32   `protobuf:"varint,1,opt,name=mask,proto3" json:"mask,omitempty"`
	VerboseLevel int32    `protobuf:"varint,2,opt,name=verbose_level,json=verboseLevel,proto3" json:"verbose_level,omitempty"`
	EnabledTags  []string `protobuf:"bytes,3,rep,name=enabled_tags,json=enabledTags,proto3" json:"enabled_tags,omitempty"`
}

func (m *GetStateResponse) Reset()         { *m = GetStateResponse{} }
func (m *GetStateResponse) String() string { return proto.CompactTextString(m) }
func (*GetStateResponse) ProtoMessage()    {}

func (m *GetStateResponse) GetMask() uint32 {
	if m != nil {
		return m.Mask
	}
	return 0
}

func (m *GetStateResponse) GetVerboseLevel() int32 {
	if m != nil {
		return m.VerboseLevel
	}
	return 0
}

func (m *GetStateResponse) GetEnabledTags() []string {
	if m != nil {
		return m.EnabledTags
	}
	return nil
}

type GetPropertyRequest struct {
	Key string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *GetPropertyRequest) Reset()         { *m = GetPropertyRequest{} }
func (m *GetPropertyRequest) String() string { return proto.CompactTextString(m) }
func (*GetPropertyRequest) ProtoMessage()    {}

func (m *GetPropertyRequest) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

type GetPropertyResponse struct {
	Value string `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *GetPropertyResponse) Reset()         { *m = GetPropertyResponse{} }
func (m *GetPropertyResponse) String() string { return proto.CompactTextString(m) }
func (*GetPropertyResponse) ProtoMessage()    {}

func (m *GetPropertyResponse) GetValue() string {
	if m != nil {
		return m.Value
	}
	return ""
}

type SetPropertyRequest struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *SetPropertyRequest) Reset()         { *m = SetPropertyRequest{} }
func (m *SetPropertyRequest) String() string { return proto.CompactTextString(m) }
func (*SetPropertyRequest) ProtoMessage()    {}

func (m *SetPropertyRequest) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *SetPropertyRequest) GetValue() string {
	if m != nil {
		return m.Value
	}
	return ""
}

type SetPropertyResponse struct{}

func (m *SetPropertyResponse) Reset()         { *m = SetPropertyResponse{} }
func (m *SetPropertyResponse) String() string { return proto.CompactTextString(m) }
func (*SetPropertyResponse) ProtoMessage()    {}

type ListPropertiesRequest struct {
	Prefix string `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`
}

func (m *ListPropertiesRequest) Reset()         { *m = ListPropertiesRequest{} }
func (m *ListPropertiesRequest) String() string { return proto.CompactTextString(m) }
func (*ListPropertiesRequest) ProtoMessage()    {}

func (m *ListPropertiesRequest) GetPrefix() string {
	if m != nil {
		return m.Prefix
	}
	return ""
}

type Property struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Property) Reset()         { *m = Property{} }
func (m *Property) String() string { return proto.CompactTextString(m) }
func (*Property) ProtoMessage()    {}

type ListPropertiesResponse struct {
	Properties []*Property `protobuf:"bytes,1,rep,name=properties,proto3" json:"properties,omitempty"`
}

func (m *ListPropertiesResponse) Reset()         { *m = ListPropertiesResponse{} }
func (m *ListPropertiesResponse) String() string { return proto.CompactTextString(m) }
func (*ListPropertiesResponse) ProtoMessage()    {}

func (m *ListPropertiesResponse) GetProperties() []*Property {
	if m != nil {
		return m.Properties
	}
	return nil
}

func init() {
	proto.RegisterType((*SetDebugRequest)(nil), "sdm.debug.SetDebugRequest")
	proto.RegisterType((*SetDebugResponse)(nil), "sdm.debug.SetDebugResponse")
	proto.RegisterType((*GetStateRequest)(nil), "sdm.debug.GetStateRequest")
	proto.RegisterType((*GetStateResponse)(nil), "sdm.debug.GetStateResponse")
	proto.RegisterType((*GetPropertyRequest)(nil), "sdm.debug.GetPropertyRequest")
	proto.RegisterType((*GetPropertyResponse)(nil), "sdm.debug.GetPropertyResponse")
	proto.RegisterType((*SetPropertyRequest)(nil), "sdm.debug.SetPropertyRequest")
	proto.RegisterType((*SetPropertyResponse)(nil), "sdm.debug.SetPropertyResponse")
	proto.RegisterType((*ListPropertiesRequest)(nil), "sdm.debug.ListPropertiesRequest")
	proto.RegisterType((*Property)(nil), "sdm.debug.Property")
	proto.RegisterType((*ListPropertiesResponse)(nil), "sdm.debug.ListPropertiesResponse")
}
