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
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netdevops/hier-config/tagrules"
)

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <config> <rules.yaml>",
		Short: "Tags a configuration and prints it filtered to the requested tags.",
		Args:  cobra.ExactArgs(2),
		RunE:  runTag,
	}
	cmd.Flags().String("include", "", "Comma-separated tags to keep. Empty keeps everything not excluded.")
	cmd.Flags().String("exclude", "", "Comma-separated tags to drop.")
	return cmd
}

func runTag(cmd *cobra.Command, args []string) error {
	platform := viper.GetString("platform")
	d, err := driverFor(platform)
	if err != nil {
		return err
	}

	root, err := parseFile(d, platform, args[0])
	if err != nil {
		return err
	}

	rulesText, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[1], err)
	}
	rules, err := tagrules.LoadRules(rulesText)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[1], err)
	}

	index := tagrules.NewTagIndex(rules)
	include := toSet(viper.GetString("include"))
	exclude := toSet(viper.GetString("exclude"))
	if err := validateTags(index, include); err != nil {
		return fmt.Errorf("--include: %w", err)
	}
	if err := validateTags(index, exclude); err != nil {
		return fmt.Errorf("--exclude: %w", err)
	}

	tagrules.Apply(root, rules, d.MatchMode)

	fmt.Print(tagrules.FilteredText(d, root, include, exclude))
	return nil
}

// validateTags rejects any tag that is neither defined by the loaded rule
// file nor a prefix of a defined tag, so a typo in --include/--exclude
// fails fast. A prefix of a defined tag is accepted, but FilteredText
// matches tags exactly, so such a prefix alone keeps no line.
func validateTags(index *tagrules.TagIndex, tags map[string]struct{}) error {
	for tag := range tags {
		if !index.HasPrefix(tag) {
			return fmt.Errorf("unknown tag %q (known tags: %s)", tag, strings.Join(index.Tags(), ", "))
		}
	}
	return nil
}

func toSet(commaSeparated string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tag := range strings.Split(commaSeparated, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out[tag] = struct{}{}
		}
	}
	return out
}
