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

	"github.com/netdevops/hier-config/report"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <device>=<file> [<device>=<file>...]",
		Short: "Aggregates one configuration per device and prints a per-device line count.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runReport,
	}
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	platform := viper.GetString("platform")
	d, err := driverFor(platform)
	if err != nil {
		return err
	}

	agg := report.NewAggregator(d)
	for _, arg := range args {
		device, path, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected <device>=<file>, got %q", arg)
		}

		root, err := parseFile(d, platform, path)
		if err != nil {
			return err
		}
		agg.Add(report.DeviceResult{Device: device, Remediation: root})
	}

	for _, line := range report.FormatSummary(agg) {
		fmt.Println(line)
	}
	return nil
}
