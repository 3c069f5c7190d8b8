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

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Process runs the command named by os.Args[1] and returns its error.
// Without arguments, or with 'help' or '-h', it prints the full usage headed
// by abstract; 'help <name>' prints a command's usage or a topic. Usage
// errors (unknown commands and topics, bad flags) are reported on os.Stderr
// and exit the process with status 2.
func Process(abstract string, commands Commands) error {
	code, err := process(os.Stdout, os.Stderr, os.Args[0], os.Args[1:], abstract, commands)
	if code != 0 {
		os.Exit(code)
	}
	return err
}

// process is Process with its environment passed in. A non-zero code is a
// usage error that has already been reported on stderr.
func process(stdout, stderr io.Writer, program string, args []string, abstract string, commands Commands) (int, error) {
	for _, cmd := range commands {
		cmd.FlagSet.SetOutput(io.Discard)
	}

	if len(args) == 0 || (len(args) == 1 && (args[0] == "help" || args[0] == "-h")) {
		printFullUsage(stdout, program, abstract, commands)
		return 0, nil
	}

	if args[0] == "help" {
		if len(args) > 2 {
			fmt.Fprintf(stderr, "Usage: %s help [command]\n\nToo many arguments given.\n", program)
			return 2, nil
		}
		if err := printCommandUsage(stdout, program, args[1], commands); err != nil {
			fmt.Fprintf(stderr, "Unknown help topic '%s'\n\nRun '%s help' for available topics.\n", args[1], program)
			return 2, nil
		}
		return 0, nil
	}

	for _, cmd := range commands {
		if cmd.Name() != args[0] || !cmd.Runnable() {
			continue
		}

		err := cmd.Run(cmd, args[1:])
		if !isParseError(err) {
			return 0, err
		}
		// Flags are registered inside Run, so help can only be printed now.
		if errors.Is(err, flag.ErrHelp) {
			printCommandHelp(stdout, program, cmd)
			return 0, nil
		}
		printCommandParsingError(stderr, program, cmd, err)
		return 2, nil
	}

	fmt.Fprintf(stderr, "Unknown command '%s'\n\nRun '%s help' for available commands.\n", args[0], program)
	return 2, nil
}
