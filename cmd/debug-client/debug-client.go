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

package debugclient

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/cli"
	dpb "github.com/MSM7x27A-Sources/android-hardware/pkg/pb/debug"
	"google.golang.org/grpc"
)

const defaultAddr = "127.0.0.1:10970"

var GetPropCmd = &cli.Command{
	Run:       getPropCmdRun,
	UsageLine: "getprop [-addr host:port] [-prefix] <key>",
	Short:     "print a property, or every property under a prefix",
	Long: `
Getprop prints the value of the named property held by debug-server. With
-prefix, every property whose key starts with the argument is printed as
key=value, one per line; an empty argument lists everything.
    `,
}

var SetPropCmd = &cli.Command{
	Run:       setPropCmdRun,
	UsageLine: "setprop [-addr host:port] <key> <value>",
	Short:     "set a property",
	Long: `
Setprop sets a property held by debug-server. Keys under ro. can only be set
once, keys under persist. survive a debug-server restart.
    `,
}

var SetDebugCmd = &cli.Command{
	Run:       setDebugCmdRun,
	UsageLine: "setdebug [-addr host:port] <tag|all> <on|off> [verbose]",
	Short:     "toggle a debug tag",
	Long: `
Setdebug enables or disables a debug tag (see 'help tags'), or all of them.
The verbose level applies when enabling, and is shared by every tag.
    `,
}

var DebugStateCmd = &cli.Command{
	Run:       debugStateCmdRun,
	UsageLine: "debugstate [-addr host:port]",
	Short:     "print the enabled debug tags",
	Long: `
Debugstate prints the debug tags debug-server currently has enabled, the raw
tag mask and the verbose level.
    `,
}

const rpcTimeout = 5 * time.Second

// dial connects to the debug service at addr.
func dial(addr string) (dpb.DebugServiceClient, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	conn, err := grpc.DialContext(ctx, addr, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return nil, nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return dpb.NewDebugServiceClient(conn), func() { conn.Close() }, nil
}

// run parses the common flags of cmd (plus whatever setup registers) and
// checks the argument count against arity, then dials and calls fn with a
// bounded context. Failures past parsing are logged.
func run(cmd *cli.Command, args []string, setup func(), arity func() (min, max int),
	fn func(ctx context.Context, c dpb.DebugServiceClient, args []string) error) error {
	addr := cmd.FlagSet.String("addr", defaultAddr, "Address of the debug server")
	logFlags := cli.RegisterLogFlags(&cmd.FlagSet)
	if setup != nil {
		setup()
	}
	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}
	rest, err := cmd.Args(arity())
	if err != nil {
		return cli.CmdParseError(err)
	}

	logger := logFlags.Logger()
	c, closer, err := dial(*addr)
	if err != nil {
		logger.Error(err)
		return err
	}
	defer closer()

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	if err := fn(ctx, c, rest); err != nil {
		logger.Error(err)
		return err
	}
	return nil
}

func between(min, max int) func() (int, int) {
	return func() (int, int) { return min, max }
}

func getPropCmdRun(cmd *cli.Command, args []string) error {
	var prefix bool
	setup := func() {
		cmd.FlagSet.BoolVar(&prefix, "prefix", false, "List every property under the given prefix")
	}
	arity := func() (int, int) {
		if prefix {
			return 0, 1
		}
		return 1, 1
	}
	return run(cmd, args, setup, arity,
		func(ctx context.Context, c dpb.DebugServiceClient, args []string) error {
			if prefix {
				p := ""
				if len(args) == 1 {
					p = args[0]
				}
				return listProps(ctx, c, os.Stdout, p)
			}
			return getProp(ctx, c, os.Stdout, args[0])
		})
}

func setPropCmdRun(cmd *cli.Command, args []string) error {
	return run(cmd, args, nil, between(2, 2),
		func(ctx context.Context, c dpb.DebugServiceClient, args []string) error {
			return setProp(ctx, c, args[0], args[1])
		})
}

func setDebugCmdRun(cmd *cli.Command, args []string) error {
	return run(cmd, args, nil, between(2, 3),
		func(ctx context.Context, c dpb.DebugServiceClient, args []string) error {
			req, err := parseSetDebug(args)
			if err != nil {
				return err
			}
			_, err = c.SetDebug(ctx, req)
			return err
		})
}

func debugStateCmdRun(cmd *cli.Command, args []string) error {
	return run(cmd, args, nil, between(0, 0),
		func(ctx context.Context, c dpb.DebugServiceClient, args []string) error {
			return debugState(ctx, c, os.Stdout)
		})
}

func getProp(ctx context.Context, c dpb.DebugServiceClient, w io.Writer, key string) error {
	res, err := c.GetProperty(ctx, &dpb.GetPropertyRequest{Key: key})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res.Value)
	return err
}

func listProps(ctx context.Context, c dpb.DebugServiceClient, w io.Writer, prefix string) error {
	res, err := c.ListProperties(ctx, &dpb.ListPropertiesRequest{Prefix: prefix})
	if err != nil {
		return err
	}
	for _, p := range res.Properties {
		if _, err := fmt.Fprintf(w, "%s=%s\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

func setProp(ctx context.Context, c dpb.DebugServiceClient, key, value string) error {
	_, err := c.SetProperty(ctx, &dpb.SetPropertyRequest{Key: key, Value: value})
	return err
}

// parseSetDebug turns "<tag> <on|off> [verbose]" into a request. Tag names
// are checked by the server.
func parseSetDebug(args []string) (*dpb.SetDebugRequest, error) {
	req := &dpb.SetDebugRequest{Tag: args[0]}
	switch strings.ToLower(args[1]) {
	case "on", "1", "true":
		req.Enable = true
	case "off", "0", "false":
	default:
		return nil, fmt.Errorf("expected on or off, got %q", args[1])
	}
	if len(args) == 3 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v < 0 {
			return nil, fmt.Errorf("expected a non-negative verbose level, got %q", args[2])
		}
		req.VerboseLevel = int32(v)
	}
	return req, nil
}

func debugState(ctx context.Context, c dpb.DebugServiceClient, w io.Writer) error {
	res, err := c.GetState(ctx, &dpb.GetStateRequest{})
	if err != nil {
		return err
	}
	tags := "(none)"
	if len(res.EnabledTags) > 0 {
		tags = strings.Join(res.EnabledTags, ",")
	}
	_, err = fmt.Fprintf(w, "tags:    %s\nmask:    %#x\nverbose: %d\n", tags, res.Mask, res.VerboseLevel)
	return err
}
