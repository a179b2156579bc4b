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

	"github.com/netdevops/hier-config/remediate"
)

func newRemediateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remediate <running> <generated>",
		Short: "Prints the commands that bring running into line with generated.",
		Args:  cobra.ExactArgs(2),
		RunE:  runRemediate,
	}
	return cmd
}

func runRemediate(cmd *cobra.Command, args []string) error {
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

	result, err := remediate.Remediate(running, generated, d)
	if err != nil {
		return err
	}
	fmt.Print(renderText(d, platform, result))
	return nil
}

func newRollbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback <running> <generated>",
		Short: "Prints the commands that would undo generated back to running.",
		Args:  cobra.ExactArgs(2),
		RunE:  runRollback,
	}
	return cmd
}

func runRollback(cmd *cobra.Command, args []string) error {
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

	result, err := remediate.Rollback(running, generated, d)
	if err != nil {
		return err
	}
	fmt.Print(renderText(d, platform, result))
	return nil
}

func newFutureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "future <running> <partial-generated>",
		Short: "Prints what running would look like after overlaying partial-generated onto it, unconditionally.",
		Args:  cobra.ExactArgs(2),
		RunE:  runFuture,
	}
	return cmd
}

func runFuture(cmd *cobra.Command, args []string) error {
	platform := viper.GetString("platform")
	d, err := driverFor(platform)
	if err != nil {
		return err
	}

	running, err := parseFile(d, platform, args[0])
	if err != nil {
		return err
	}
	partial, err := parseFile(d, platform, args[1])
	if err != nil {
		return err
	}

	result := remediate.Future(running, partial, d)
	fmt.Print(renderText(d, platform, result))
	return nil
}
