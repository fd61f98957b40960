/*
Copyright © 2020 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xoviat/klib/lib"
	"github.com/xoviat/klib/lib/kicad"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <part-table>",
	Short: "Generate symbol libraries and footprints from a part table",
	Long: `Generate KiCad symbol libraries and footprints from a part table.

The table is CSV or xlsx with a header row. With --family, every record
belongs to that family; otherwise records are grouped by their Family
column. A run either writes the complete artifact set for each family
or nothing at all.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		if !lib.Exists(src) {
			log.Errorf("failed to stat part table: %s", src)
			return
		}

		parts, err := lib.ReadParts(src)
		if err != nil {
			log.Errorf("failed to read part table: %s", err)
			return
		}

		family, _ := cmd.Flags().GetString("family")
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = outputDir()
		}

		grouped, err := groupByFamily(parts, family)
		if err != nil {
			log.Errorf("%s", err)
			return
		}

		all := []string{}
		for _, family := range lib.Families() {
			members := grouped[family]
			if len(members) == 0 {
				continue
			}

			written, err := lib.GenerateFamily(family, members, output, kicad.UUIDs())
			if err != nil {
				log.Errorf("generation failed for family %s: %s", family, err)
				return
			}

			log.Infow("generated family",
				"family", family, "parts", len(members), "files", len(written))
			for _, path := range written {
				log.Debugf("wrote %s", path)
			}
			all = append(all, written...)
		}

		if validate, _ := cmd.Flags().GetBool("validate"); validate {
			ki, err := lib.NewKicadInterface()
			if err != nil {
				log.Errorf("failed to locate a KiCad installation: %s", err)
				return
			}

			if err := ki.CheckArtifacts(all); err != nil {
				log.Errorf("validation failed: %s", err)
				return
			}
			log.Infow("validated artifacts", "files", len(all))
		}
	},
}

func validFamily(name string) bool {
	for _, family := range lib.Families() {
		if lib.Family(name) == family {
			return true
		}
	}
	return false
}

func groupByFamily(parts []kicad.Component, family string) (map[lib.Family][]kicad.Component, error) {
	grouped := map[lib.Family][]kicad.Component{}
	if family != "" {
		if !validFamily(family) {
			return nil, fmt.Errorf("unknown component family %q", family)
		}
		grouped[lib.Family(family)] = parts
		return grouped, nil
	}

	for i, part := range parts {
		name := part.Get("Family", "")
		if name == "" {
			return nil, fmt.Errorf("record %d (%s) has no Family column", i+1, part.Name)
		}
		if !validFamily(name) {
			return nil, fmt.Errorf("record %d (%s) has unknown family %q", i+1, part.Name, name)
		}

		grouped[lib.Family(name)] = append(grouped[lib.Family(name)], part)
	}

	return grouped, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("family", "", "component family of every record in the table")
	generateCmd.Flags().StringP("output", "o", "", "output directory for generated artifacts")
	generateCmd.Flags().Bool("validate", false, "check generated artifacts with kicad-cli")
}
