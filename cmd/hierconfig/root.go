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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netdevops/hier-config/drivers"
)

// rootCmd builds the hierconfig command tree. File reading happens in the
// leaf RunE functions, never in the core packages; every subcommand here
// is a thin adapter between a flag set and a hierconfig/parser/render/
// remediate/diff/tagrules/report call.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hierconfig",
		Short: "hierconfig diffs and remediates hierarchical network device configurations",
	}

	cfgFile := root.PersistentFlags().String("config_file", "", "Path to a config file of default flag values.")
	root.PersistentFlags().String("platform", "", fmt.Sprintf("Target platform (%s).", strings.Join(drivers.Supported, ", ")))

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *cfgFile != "" {
			viper.SetConfigFile(*cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
		viper.BindPFlags(cmd.Flags())
		viper.BindPFlags(cmd.PersistentFlags())
		viper.AutomaticEnv()
		return nil
	}

	root.AddCommand(newParseCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newRemediateCmd())
	root.AddCommand(newRollbackCmd())
	root.AddCommand(newFutureCmd())
	root.AddCommand(newTagCmd())
	root.AddCommand(newReportCmd())

	return root
}
