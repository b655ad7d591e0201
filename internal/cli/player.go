package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/roster"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
		Long: `Show a single player, or manage players.

create, update, delete and feedback require an administrator session.`,
	}

	cmd.AddCommand(newPlayerShowCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerFeedbackCmd())

	return cmd
}

// playerFlags binds the editable fields of a player
type playerFlags struct {
	nombre       string
	apellidos    string
	apodo        string
	nacionalidad string
	posicion     string
	goles        int
	asistencias  int
	ganados      int
	perdidos     int
}

func (f *playerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nombre, "name", "", "First name")
	cmd.Flags().StringVar(&f.apellidos, "surname", "", "Surname")
	cmd.Flags().StringVar(&f.apodo, "nickname", "", "Nickname")
	cmd.Flags().StringVar(&f.nacionalidad, "nationality", "", "Nationality")
	cmd.Flags().StringVar(&f.posicion, "position", "", "Position: POR, DEF, MED, DEL")
	cmd.Flags().IntVar(&f.goles, "goals", 0, "Goals")
	cmd.Flags().IntVar(&f.asistencias, "assists", 0, "Assists")
	cmd.Flags().IntVar(&f.ganados, "won", 0, "Matches won")
	cmd.Flags().IntVar(&f.perdidos, "lost", 0, "Matches lost")
}

// apply copies the flags the user set onto p, leaving the rest untouched
func (f *playerFlags) apply(cmd *cobra.Command, p *model.Player) error {
	changed := cmd.Flags().Changed

	if changed("position") {
		pos, err := model.ParsePosition(f.posicion)
		if err != nil {
			return err
		}
		p.Posicion = pos
	}
	if changed("name") {
		p.Nombre = f.nombre
	}
	if changed("surname") {
		p.Apellidos = f.apellidos
	}
	if changed("nickname") {
		p.Apodo = f.apodo
	}
	if changed("nationality") {
		p.Nacionalidad = f.nacionalidad
	}
	if changed("goals") {
		p.Goles = f.goles
	}
	if changed("assists") {
		p.Asistencias = f.asistencias
	}
	if changed("won") {
		p.PartidosGanados = f.ganados
	}
	if changed("lost") {
		p.PartidosPerdidos = f.perdidos
	}
	return nil
}

// submitForm fills the open editor form from flags and submits it
func submitForm(cmd *cobra.Command, flags *playerFlags) error {
	var applyErr error
	app.Editor.UpdateDraft(func(p *model.Player) {
		applyErr = flags.apply(cmd, p)
	})
	if applyErr != nil {
		app.Editor.Close()
		return applyErr
	}

	if err := app.Editor.Submit(cmd.Context()); err != nil {
		return err
	}

	output(cmd).PrintMessage(app.Editor.Message())
	return nil
}

// findPlayer refreshes the directory and looks up id in it
func findPlayer(cmd *cobra.Command, id string) (model.Player, error) {
	if err := app.Directory.Refresh(cmd.Context()); err != nil {
		return model.Player{}, err
	}
	p, ok := app.Directory.Find(id)
	if !ok {
		return model.Player{}, model.ErrPlayerNotFound
	}
	return p, nil
}

func newPlayerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := findPlayer(cmd, args[0])
			if err != nil {
				return err
			}

			output(cmd).Print(NewPlayerView(p))
			return nil
		},
	}
}

func newPlayerCreateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAdmin(); err != nil {
				return err
			}

			app.Editor.OpenCreate()
			return submitForm(cmd, &flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a player; fields not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAdmin(); err != nil {
				return err
			}

			p, err := findPlayer(cmd, args[0])
			if err != nil {
				return err
			}

			app.Editor.OpenEdit(p)
			return submitForm(cmd, &flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAdmin(); err != nil {
				return err
			}

			id := args[0]
			label := id
			if p, err := findPlayer(cmd, id); err == nil {
				label = fmt.Sprintf("%s (%s)", p.FullName(), id)
			}

			flow := roster.NewDeleteFlow(app.Editor)
			flow.Request(id)

			if !yes && !confirm(cmd, fmt.Sprintf("Delete player %s? [y/N]: ", label)) {
				flow.Cancel()
				output(cmd).PrintMessage("Deletion cancelled")
				return nil
			}

			if err := flow.Confirm(cmd.Context()); err != nil {
				return err
			}

			output(cmd).PrintMessage(roster.MsgDeleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func newPlayerFeedbackCmd() *cobra.Command {
	var delta model.Delta

	cmd := &cobra.Command{
		Use:   "feedback <id>",
		Short: "Add match results to a player's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAdmin(); err != nil {
				return err
			}

			p, err := findPlayer(cmd, args[0])
			if err != nil {
				return err
			}

			updated, err := app.Editor.RecordFeedback(cmd.Context(), p, delta)
			if err != nil {
				return err
			}

			out := output(cmd)
			out.PrintMessage(roster.MsgFeedback)
			out.Print(NewPlayerView(updated))
			return nil
		},
	}

	cmd.Flags().IntVar(&delta.Goles, "goals", 0, "Goals to add")
	cmd.Flags().IntVar(&delta.Asistencias, "assists", 0, "Assists to add")
	cmd.Flags().IntVar(&delta.PartidosGanados, "won", 0, "Matches won to add")
	cmd.Flags().IntVar(&delta.PartidosPerdidos, "lost", 0, "Matches lost to add")

	return cmd
}
