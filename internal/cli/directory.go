package cli

import (
	"github.com/spf13/cobra"

	"github.com/hipolitesport/roster/internal/roster"
)

func newPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "players",
		Aliases: []string{"ls"},
		Short:   "List all players, highest scorers first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Directory.Refresh(cmd.Context()); err != nil {
				return err
			}

			output(cmd).Print(NewPlayerViews(app.Directory.Players()))
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	var by string
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank players by goals or assists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, err := roster.ParseStat(by)
			if err != nil {
				return err
			}

			if err := app.Directory.Refresh(cmd.Context()); err != nil {
				return err
			}

			ranked := app.Directory.Leaderboard(stat)
			if limit > 0 && limit < len(ranked) {
				ranked = ranked[:limit]
			}

			output(cmd).Print(Leaderboard{Stat: stat, Players: NewPlayerViews(ranked)})
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "goals", "Statistic to rank by: goals, assists")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the first n players")

	return cmd
}
