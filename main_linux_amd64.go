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

package main

import (
	"os"

	"github.com/MSM7x27A-Sources/android-hardware/doc"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/cli"

	debugclient "github.com/MSM7x27A-Sources/android-hardware/cmd/debug-client"
	debugserver "github.com/MSM7x27A-Sources/android-hardware/cmd/debug-server"
)

func main() {
	// We aggregate all the top-level commands (i.e. 'sdm <command> ...') as
	// needed.
	var commands cli.Commands

	// The server owning the debug filter and property store, and the
	// clients driving it.
	commands = append(commands, debugserver.DebugServerCmd)
	commands = append(commands, debugclient.GetPropCmd)
	commands = append(commands, debugclient.SetPropCmd)
	commands = append(commands, debugclient.SetDebugCmd)
	commands = append(commands, debugclient.DebugStateCmd)

	// We also include documentation pseudo-commands for the architecture and
	// the debug tags.
	commands = append(commands, doc.ArchitectureCmd)
	commands = append(commands, doc.TagsCmd)

	// We define the top level CLI abstract here.
	abstract := "Sdm is the display manager's tag-filtered debug logging facility."
	if err := cli.Process(abstract, commands); err != nil {
		os.Exit(1)
	}
}
