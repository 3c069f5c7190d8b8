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

// Package cli allows the construction of structured command-line interfaces with sub-commands and
// help topics. This is very similar to the interface in git where the top-level program name (git)
// is preceded by a qualifier that determines what sub-command to execute
// (git {reflog,commit,cherry-pick}).
//
// Package cli explicitly avoid init time global hooks and has a minimal binary size footprint.
//
// Example:
//
//	// We aggregate all the top-level commands, accessible via 'sdm <command> ...', as needed.
//	var commands cli.Commands
//	commands = append(commands, debugserver.DebugServerCmd)
//	commands = append(commands, debugclient.GetPropCmd)
//
//	// We also include a documentation pseudo-command for the debug tags.
//	commands = append(commands, doc.TagsCmd)
//
//	// We define the top level CLI blurb here.
//	abstract := "Sdm is the display manager's tag-filtered debug logging facility."
//	if err := cli.Process(abstract, commands); err != nil {
//		os.Exit(1)
//	}
//
// This generates the following top-level behaviour:
//
//	$ sdm {,-h,help}
//	Sdm is the display manager's tag-filtered debug logging facility.
//
//	Usage:
//
//	    sdm command [arguments]
//
//	The commands are:
//
//	        debug-server           serve the display debug filter and property store
//	        getprop                print a property, or every property under a prefix
//
//	Use 'sdm help [command]' for more information about a command.
//
//	Additional help topics:
//
//	        tags                   debug tags and the properties that toggle them
//
//	Use "sdm help [topic]" for more information about that topic.
//
// Using help for a listed command prints its usage line and long description, for a help topic
// its short and long descriptions. Individual commands also have their own '-h' switches listing
// their flags.
//
// Commands share the -log-* flags through RegisterLogFlags, which also builds the process
// logger, and check their positional arguments with Command.Args.
package cli

// TODO(irfansharif): What about top level root command flags? Applicable across sub-commands?
