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

	"github.com/mholt/archiver"
	"github.com/spf13/cobra"

	"github.com/xoviat/klib/lib"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <destination>",
	Short: "Export the part library or archive generated artifacts",
	Long: `Export the local part library in the xlsx format, or with
--archive pack a directory of generated symbol libraries and footprints
into a zip for distribution.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dst := args[0]

		src, _ := cmd.Flags().GetString("archive")
		if src != "" {
			if !lib.Exists(src) {
				log.Errorf("failed to stat directory: %s", src)
				return
			}

			if err := archiver.Archive([]string{src}, dst); err != nil {
				log.Errorf("failed to archive %s: %s", src, err)
				return
			}

			log.Infow("archived artifacts", "source", src, "destination", dst)
			return
		}

		if !strings.HasSuffix(dst, ".xlsx") && !strings.HasSuffix(dst, ".xls") {
			log.Errorf("export file name must be an excel file: %s", dst)
			return
		}

		library, err := lib.NewDefaultLibrary()
		if err != nil {
			log.Errorf("failed to open or create default library: %s", err)
			return
		}
		defer library.Close()

		if err := library.Export(dst); err != nil {
			log.Errorf("failed to export part library: %s", err)
			return
		}

		log.Infow("exported part library", "destination", dst)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("archive", "", "directory of generated artifacts to pack")
}
