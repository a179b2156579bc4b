// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	_ "github.com/netdevops/hier-config/drivers"
)

func TestRootCmdRegistersSubcommands(t *testing.T) {
	root := rootCmd()
	want := []string{"parse", "render", "diff", "remediate", "rollback", "future", "tag", "report"}
	for _, name := range want {
		if root.Commands() == nil {
			t.Fatalf("root command has no subcommands")
		}
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a %q subcommand", name)
		}
	}
}

// writeTemp writes contents to name under t.TempDir and returns its path.
func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestRemediateCmdEndToEnd(t *testing.T) {
	viper.Reset()
	running := writeTemp(t, "running.txt", "interface Vlan2\n  description old\n")
	generated := writeTemp(t, "generated.txt", "interface Vlan2\n  description new\n")

	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--platform", "ios", "remediate", running, generated})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestDiffCmdRequiresPlatform(t *testing.T) {
	viper.Reset()
	a := writeTemp(t, "a.txt", "hostname sw1\n")
	b := writeTemp(t, "b.txt", "hostname sw2\n")

	root := rootCmd()
	root.SetArgs([]string{"diff", a, b})
	root.SilenceErrors = true
	root.SilenceUsage = true

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "--platform") {
		t.Fatalf("expected a --platform-is-required error, got %v", err)
	}
}
