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
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"sync"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/debug"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/log"
	dpb "github.com/MSM7x27A-Sources/android-hardware/pkg/pb/debug"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/property"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/trace"
	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/soheilhy/cmux"
	xtrace "golang.org/x/net/trace"
	"google.golang.org/grpc"
)

// Start brings up the property stores, the debug filter and its property
// watcher, and serves the debug service on cfg.Port. gRPC, grpc-web and the
// trace pages share one listener.
func Start(logger *log.Logger, cfg Config) (wait func(), shutdown func(), err error) {
	settings, err := parseTagSettings(cfg.Debug)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(cfg.DBStore, 0700); err != nil {
		return nil, nil, err
	}
	disk, err := property.OpenBoltStore(path.Join(cfg.DBStore, "properties.db"))
	if err != nil {
		return nil, nil, err
	}
	store := property.NewLayered(property.NewMemStore(), disk)

	var fileWatcher *property.FileWatcher
	if cfg.PropFile != "" {
		fileWatcher, err = property.WatchFile(logger, store, cfg.PropFile)
		if err != nil {
			disk.Close()
			return nil, nil, fmt.Errorf("loading %s: %w", cfg.PropFile, err)
		}
	}

	handler := debug.NewHandler(debug.NewState(),
		debug.Sink(logger),
		debug.Tracing(trace.New(cfg.TraceCategory)),
		debug.Properties(store),
		debug.Label(cfg.Label),
	)
	applyTagSettings(handler, settings)

	lis, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", cfg.Port))
	if err != nil {
		logger.Errorf("failed to open TCP port: %v", err)
		if fileWatcher != nil {
			fileWatcher.Stop()
		}
		disk.Close()
		return nil, nil, err
	}

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())
	watcher := debug.NewWatcher(handler, store, cfg.Poll)

	// Create a cmux; multiplex grpc and http over the same listener.
	mux := cmux.New(lis)

	// Match connections in order: First grpc, then everything else for web.
	grpcL := mux.Match(cmux.HTTP2HeaderField("content-type", "application/grpc"))
	httpL := mux.Match(cmux.Any())

	grpcServer := grpc.NewServer()
	dpb.RegisterDebugServiceServer(grpcServer, newDebugServer(logger, handler, store))

	wrapped := grpcweb.WrapServer(grpcServer)
	pages := http.NewServeMux()
	pages.HandleFunc("/debug/requests", xtrace.Traces)
	pages.HandleFunc("/debug/events", xtrace.Events)
	httpServer := http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wrapped.IsGrpcWebRequest(r) {
			wrapped.ServeHTTP(w, r)
			return
		}
		pages.ServeHTTP(w, r)
	})}

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := watcher.Run(ctx); err != nil && err != context.Canceled {
			logger.Errorf("property watcher error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Infof("serving RPC server on port: %d", cfg.Port)
		if err := grpcServer.Serve(grpcL); err != nil {
			logger.Errorf("grpc server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Infof("serving HTTP server on port: %d", cfg.Port)
		if err := httpServer.Serve(httpL); err != nil {
			logger.Errorf("http server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := mux.Serve(); err != nil {
			logger.Errorf("cmux server error: %v", err)
		}
	}()

	var once sync.Once
	shutdown = func() {
		once.Do(func() {
			cancel()
			if fileWatcher != nil {
				fileWatcher.Stop()
			}
			lis.Close()
			grpcServer.Stop()
			httpServer.Shutdown(context.Background())
			grpcL.Close()
			disk.Close()
		})
	}

	return wg.Wait, shutdown, nil
}
