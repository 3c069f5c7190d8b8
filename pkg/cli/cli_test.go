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
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func TestCommandName(t *testing.T) {
	testCases := []struct {
		usage, name string
	}{
		{"getprop [-addr host:port] <key>", "getprop"},
		{"tags", "tags"},
		{"", ""},
	}
	for _, tc := range testCases {
		cmd := &Command{UsageLine: tc.usage}
		if got := cmd.Name(); got != tc.name {
			t.Errorf("expected name %q for %q, got %q", tc.name, tc.usage, got)
		}
	}
}

func TestCommandArgs(t *testing.T) {
	testCases := []struct {
		args     []string
		min, max int
		ok       bool
	}{
		{[]string{"sdm.idle_time"}, 1, 1, true},
		{[]string{}, 1, 1, false},
		{[]string{"a", "b", "c"}, 2, 3, true},
		{[]string{"a", "b", "c", "d"}, 2, 3, false},
		{[]string{"a", "b", "c", "d"}, 0, -1, true},
	}
	for _, tc := range testCases {
		cmd := &Command{UsageLine: "setdebug <tag> <on|off> [verbose]"}
		if err := cmd.FlagSet.Parse(tc.args); err != nil {
			t.Fatal(err)
		}
		_, err := cmd.Args(tc.min, tc.max)
		if (err == nil) != tc.ok {
			t.Errorf("%v in [%d, %d]: unexpected error %v", tc.args, tc.min, tc.max, err)
		}
		if err != nil && !strings.Contains(err.Error(), cmd.UsageLine) {
			t.Errorf("expected error to carry the usage line, got %v", err)
		}
	}
}

// testCommands returns a runnable command that records its flag and
// arguments, and a help topic.
func testCommands(ran *[]string, runErr error) Commands {
	setprop := &Command{
		UsageLine: "setprop <key> <value>",
		Short:     "set a property",
		Run: func(cmd *Command, args []string) error {
			addr := cmd.FlagSet.String("addr", "127.0.0.1:10970", "Address of the debug server")
			if err := cmd.FlagSet.Parse(args); err != nil {
				return CmdParseError(err)
			}
			rest, err := cmd.Args(2, 2)
			if err != nil {
				return CmdParseError(err)
			}
			*ran = append([]string{*addr}, rest...)
			return runErr
		},
	}
	tags := &Command{UsageLine: "tags", Short: "debug tags", Long: "\n  Tag listing.\n"}
	return Commands{setprop, tags}
}

func TestProcess(t *testing.T) {
	runErr := errors.New("rpc failed")
	testCases := []struct {
		args     []string
		code     int
		err      error
		stdout   string
		stderr   string
		expected []string
	}{
		{args: nil, stdout: "Abstract."},
		{args: []string{"help"}, stdout: "set a property"},
		{args: []string{"-h"}, stdout: "sdm command [arguments]"},
		{args: []string{"help", "tags"}, stdout: "Topic: debug tags\n\nTag listing.\n"},
		{args: []string{"help", "setprop"}, stdout: "Usage: sdm setprop <key> <value>"},
		{args: []string{"help", "bogus"}, code: 2, stderr: "Unknown help topic 'bogus'"},
		{args: []string{"help", "a", "b"}, code: 2, stderr: "Too many arguments given."},
		{args: []string{"bogus"}, code: 2, stderr: "Unknown command 'bogus'"},
		{args: []string{"tags"}, code: 2, stderr: "Unknown command 'tags'"},
		{args: []string{"setprop", "-h"}, stdout: "-addr string"},
		{args: []string{"setprop", "-x"}, code: 2, stderr: "Flag provided but not defined: -x"},
		{args: []string{"setprop", "a"}, code: 2, stderr: "usage: setprop <key> <value>"},
		{
			args:     []string{"setprop", "-addr", "127.0.0.1:1", "sdm.idle_time", "100"},
			err:      runErr,
			expected: []string{"127.0.0.1:1", "sdm.idle_time", "100"},
		},
	}

	for _, tc := range testCases {
		var ran []string
		var stdout, stderr bytes.Buffer
		code, err := process(&stdout, &stderr, "sdm", tc.args, "Abstract.", testCommands(&ran, runErr))
		if code != tc.code {
			t.Errorf("%v: expected exit code %d, got %d", tc.args, tc.code, code)
		}
		if err != tc.err {
			t.Errorf("%v: expected error %v, got %v", tc.args, tc.err, err)
		}
		if !strings.Contains(stdout.String(), tc.stdout) {
			t.Errorf("%v: expected stdout to contain %q, got:\n%s", tc.args, tc.stdout, stdout.String())
		}
		if !strings.Contains(stderr.String(), tc.stderr) {
			t.Errorf("%v: expected stderr to contain %q, got:\n%s", tc.args, tc.stderr, stderr.String())
		}
		if tc.expected != nil && strings.Join(ran, " ") != strings.Join(tc.expected, " ") {
			t.Errorf("%v: expected the command to see %v, got %v", tc.args, tc.expected, ran)
		}
	}
}

func TestCmdParseError(t *testing.T) {
	err := CmdParseError(flag.ErrHelp)
	if !isParseError(err) || !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected a parse error wrapping flag.ErrHelp, got %v", err)
	}
	if isParseError(errors.New("rpc failed")) || isParseError(nil) {
		t.Error("expected plain errors to not be parse errors")
	}
}

func TestUpcaseInitial(t *testing.T) {
	if got := upcaseInitial("flag needs an argument"); got != "Flag needs an argument" {
		t.Errorf("unexpected %q", got)
	}
	if got := upcaseInitial(""); got != "" {
		t.Errorf("unexpected %q", got)
	}
}
