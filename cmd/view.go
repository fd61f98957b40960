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
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/xoviat/klib/lib"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the local part library as a table",
	Long:  `Render the local part library as a table in the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		library, err := lib.NewDefaultLibrary()
		if err != nil {
			log.Errorf("failed to open or create default library: %s", err)
			return
		}
		defer library.Close()

		parts, err := library.All()
		if err != nil {
			log.Errorf("failed to list library parts: %s", err)
			return
		}

		family, _ := cmd.Flags().GetString("family")

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"MPN", "Series", "Family", "Package", "Value", "Description",
		})
		for _, part := range parts {
			if family != "" && part.Family != family {
				continue
			}

			t.AppendRow(table.Row{
				part.MPN, part.Series, part.Family, part.Package,
				part.Value, part.Description,
			})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().String("family", "", "only show parts of one family")
}
