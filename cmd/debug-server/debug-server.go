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
	"os"
	"os/signal"
	"syscall"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/cli"
	"github.com/spf13/afero"
)

var DebugServerCmd = &cli.Command{
	Run:       debugServerCmdRun,
	UsageLine: "debug-server [-config <file>] [-port port] [-db-store <path>] [-prop-file <path>] [-poll interval] [-debug tag[:level],...]",
	Short:     "serve the display debug filter and property store",
	Long: `
Debug-server owns the display manager's debug filter and its property store,
and serves both over gRPC (and grpc-web) on localhost.

Tags are toggled over RPC (see debug-client's setdebug) or by setting
properties: sdm.debug.all and sdm.debug.<tag>, with '-' in tag names written
as '_'. A property value N <= 0 disables the tag, N >= 1 enables it with
verbose level N-1. See 'help tags'.

Properties live in memory; keys under persist. are also written to a bolt
database under -db-store. A build.prop style file given by -prop-file is
loaded at startup and reloaded when it changes.

Flags may also be given in the file named by -config (yaml, toml or json),
using the flag names as keys. Flags set on the command line take precedence.
    `,
}

func debugServerCmdRun(cmd *cli.Command, args []string) error {
	var configFile string
	cmd.FlagSet.StringVar(&configFile, "config", "", "Config file to read settings from")
	cmd.FlagSet.Int("port", 10970, "Port which the server will run on")
	cmd.FlagSet.String("db-store", "sdm-props", "Folder to store persistent properties to")
	cmd.FlagSet.String("prop-file", "", "build.prop style file to load and watch")
	cmd.FlagSet.Duration("poll", 0, "Interval between polls of the sdm.debug.* properties")
	cmd.FlagSet.String("label", "", "Label debug statements are emitted under")
	cmd.FlagSet.String("trace-category", "", "Trace family spans are recorded under")
	cmd.FlagSet.String("debug", "", "Comma-separated list of tag[:level] settings to enable at startup")
	logFlags := cli.RegisterLogFlags(&cmd.FlagSet)

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}
	if _, err := cmd.Args(0, 0); err != nil {
		return cli.CmdParseError(err)
	}

	logger := logFlags.Logger()

	cfg, err := loadConfig(afero.NewOsFs(), configFile, &cmd.FlagSet)
	if err != nil {
		logger.Error(err)
		return err
	}

	wait, shutdown, err := Start(logger, cfg)
	if err != nil {
		logger.Error(err)
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Infof("received %s, shutting down", sig)
		shutdown()
	}()

	wait()
	shutdown()

	return nil
}
