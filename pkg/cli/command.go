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
	"strings"
)

// A Command is a subcommand like 'sdm debug-server' or 'sdm setprop ...'. A
// Command without Run is a help topic, reachable only through 'sdm help
// <topic>'.
type Command struct {
	// Run runs the command with the arguments following its name. Flags are
	// parsed by Run through FlagSet; parse failures should be returned as
	// CmdParseError(err) so Process can print usage.
	Run func(cmd *Command, args []string) error

	// UsageLine is the one-line usage message. Its first word is the
	// command name.
	UsageLine string

	// Short is shown in the command listing, Long by 'sdm help <command>'.
	Short string
	Long  string

	// FlagSet holds the command's flags. Its own output is discarded; Process
	// prints errors and defaults.
	FlagSet flag.FlagSet
}

type Commands []*Command

// Name returns the first word of the usage line.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.UsageLine, " ")
	return name
}

// Runnable reports whether c is a command rather than a help topic.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// Args returns the positional arguments left after flag parsing, or an error
// naming the usage line when there are fewer than min or more than max. A
// negative max means no upper bound.
func (c *Command) Args(min, max int) ([]string, error) {
	args := c.FlagSet.Args()
	if len(args) < min || (max >= 0 && len(args) > max) {
		return nil, fmt.Errorf("unexpected arguments %q, usage: %s", args, c.UsageLine)
	}
	return args, nil
}

type parseError struct {
	err error
}

func (p *parseError) Error() string { return p.err.Error() }
func (p *parseError) Unwrap() error { return p.err }

// CmdParseError marks err as a flag parsing failure.
func CmdParseError(err error) error {
	return &parseError{err: err}
}

func isParseError(err error) bool {
	var p *parseError
	return errors.As(err, &p)
}
