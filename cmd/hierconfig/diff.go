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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netdevops/hier-config/diff"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <running> <generated>",
		Short: "Prints a tree-aware unified diff between two configurations.",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff,
	}
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	platform := viper.GetString("platform")
	d, err := driverFor(platform)
	if err != nil {
		return err
	}

	running, err := parseFile(d, platform, args[0])
	if err != nil {
		return err
	}
	generated, err := parseFile(d, platform, args[1])
	if err != nil {
		return err
	}

	fmt.Print(diff.Unified(d, running, generated))
	return nil
}
