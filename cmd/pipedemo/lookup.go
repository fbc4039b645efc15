package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hocho/pipestyle/internal/demo"
	"github.com/hocho/pipestyle/pkg/pipe"
	"github.com/hocho/pipestyle/pkg/pipe/chain"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Look up a person and rank their school",
	Long: `Look up a person by name and print the rank of their school.
People without a school rank as -1. An unknown name is an error.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		src, err := demo.LoadSource()
		if err != nil {
			fatal("loading roster", err)
		}

		rank, err := rankOf(src, demo.StandardRankings(), name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(rank)
	},
}

// rankOf runs the lookup pipeline and resurfaces a raised lookup failure
// as an ordinary error at the command boundary.
func rankOf(src *demo.Source, ranks demo.Rankings, name string) (rank int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	rank = pipe.ToUsing(demo.NewNotifier(logger), func(n *demo.Notifier) int {
		person := pipe.DoIfNil(src.FindByName(name), func() {
			logger.Error().Str("person", name).Msg("person not found")
			panic(demo.NotFoundError(name))
		})
		return chain.ToNotNilOr(
			chain.To(
				chain.From(person).Do(func(p *demo.Person) { n.Notify(*p) }),
				func(p *demo.Person) *demo.School { return p.School },
			),
			func(s *demo.School) int { return ranks.Rank(*s) },
			-1,
		).Value()
	})
	return rank, nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
