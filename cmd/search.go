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
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/xoviat/klib/lib"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the local part library",
	Long: `Search the local part library by MPN, value or description.

With --interactive, an MPN-completing prompt reads queries until an
empty line.`,
	Run: func(cmd *cobra.Command, args []string) {
		library, err := lib.NewDefaultLibrary()
		if err != nil {
			log.Errorf("failed to open or create default library: %s", err)
			return
		}
		defer library.Close()

		interactive, _ := cmd.Flags().GetBool("interactive")
		if !interactive {
			if len(args) < 1 {
				log.Errorf("a query is required unless --interactive is given")
				return
			}

			printParts(library.Find(strings.Join(args, " ")))
			return
		}

		parts, err := library.All()
		if err != nil {
			log.Errorf("failed to list library parts: %s", err)
			return
		}

		suggestions := make([]prompt.Suggest, 0, len(parts))
		for _, part := range parts {
			suggestions = append(suggestions, prompt.Suggest{
				Text:        part.MPN,
				Description: part.Description,
			})
		}

		for {
			query := prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
				return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
			})

			if query == "" {
				return
			}

			printParts(library.Find(query))
		}
	},
}

func printParts(parts []*lib.LibraryPart) {
	if len(parts) == 0 {
		fmt.Println("no matching parts")
		return
	}

	for _, part := range parts {
		fmt.Printf("%s\t%s\t%s\t%s\n",
			part.MPN, part.Package, part.Value, part.Description)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("interactive", "i", false, "interactive prompt with MPN completion")
}
