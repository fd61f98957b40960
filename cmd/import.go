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
	"strings"

	"github.com/spf13/cobra"

	"github.com/xoviat/klib/lib"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <part-table.xlsx>",
	Short: "Import a part table into the local library",
	Long: `Import a vendor part table, in the xlsx format, into the local
part library and fold the new parts into the search index.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		if !strings.HasSuffix(src, ".xlsx") && !strings.HasSuffix(src, ".xls") {
			log.Errorf("import file must be an excel file: %s", src)
			return
		}

		if !lib.Exists(src) {
			log.Errorf("failed to stat file: %s", src)
			return
		}

		library, err := lib.NewDefaultLibrary()
		if err != nil {
			log.Errorf("failed to open or create default library: %s", err)
			return
		}
		defer library.Close()

		if err := library.Import(src); err != nil {
			log.Errorf("failed to import part table: %s", err)
			return
		}

		indexed, err := library.IndexPending()
		if err != nil {
			log.Errorf("failed to index imported parts: %s", err)
			return
		}

		log.Infow("imported part table", "source", src, "indexed", indexed)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
