package cli

import (
	"fmt"
	"strings"

	"github.com/corpusling/connalign/lexicon"
	"github.com/spf13/cobra"
)

func (c *CLI) newRelationsCommand() *cobra.Command {
	var groupsPath string

	cmd := &cobra.Command{
		Use:   "relations",
		Short: "List the discourse relations available to run --relation",
		Example: `  connalign relations
  connalign relations --groups relations.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := lexicon.DefaultGroups()
			if groupsPath != "" {
				var err error
				if groups, err = lexicon.ReadGroups(groupsPath); err != nil {
					return err
				}
			}
			for _, name := range groups.Names() {
				fmt.Printf("%-20s %s\n", name, strings.Join(groups[name], ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&groupsPath, "groups", "", "JSON file with relation groups (default: built-in table)")
	return cmd
}
