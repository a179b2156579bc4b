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
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <config>",
		Short: "Parses a configuration and prints its line count and top-level sections.",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	platform := viper.GetString("platform")
	d, err := driverFor(platform)
	if err != nil {
		return err
	}

	root, err := parseFile(d, platform, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%d lines total\n", len(root.AllChildren()))
	for _, n := range root.Children() {
		fmt.Println(n.Text())
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <config>",
		Short: "Parses a configuration and renders it back to its native text form.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	platform := viper.GetString("platform")
	d, err := driverFor(platform)
	if err != nil {
		return err
	}

	root, err := parseFile(d, platform, args[0])
	if err != nil {
		return err
	}

	fmt.Print(renderText(d, platform, root))
	return nil
}
