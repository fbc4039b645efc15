package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hocho/pipestyle/internal/demo"
	"github.com/hocho/pipestyle/pkg/pipe"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster",
	Long:  `Print every person in the roster with their school and its rank.`,
	Run: func(cmd *cobra.Command, args []string) {
		src, err := demo.LoadSource()
		if err != nil {
			fatal("loading roster", err)
		}

		ranks := demo.StandardRankings()
		for p := range src.Persons() {
			fmt.Println(pipe.ToNotNilOr(p.School,
				func(s *demo.School) string {
					return fmt.Sprintf("%s (%s, rank %d)", p.Name, s.Name, ranks.Rank(*s))
				},
				fmt.Sprintf("%s (no school)", p.Name),
			))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
