package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/roster"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error as the message a user should see. Errors the
// roster does not recognise (flag parsing, say) are shown as they are.
func (o *Output) PrintError(err error) {
	msg := roster.UserMessage(err)
	if msg == roster.MsgUnexpectedError {
		msg = err.Error()
	}

	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{
				"message": msg,
			},
		})
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", msg)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlayerView:
		o.printPlayer(v)
	case []PlayerView:
		o.printPlayers(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case SessionView:
		o.printSession(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerView is a player as displayed, with the derived match count
type PlayerView struct {
	model.Player
	PartidosJugados int `json:"partidosJugados"`
}

// NewPlayerView derives the displayed fields of p
func NewPlayerView(p model.Player) PlayerView {
	return PlayerView{Player: p, PartidosJugados: p.MatchesPlayed()}
}

// NewPlayerViews converts a list, keeping its order
func NewPlayerViews(players []model.Player) []PlayerView {
	views := make([]PlayerView, len(players))
	for i, p := range players {
		views[i] = NewPlayerView(p)
	}
	return views
}

// Leaderboard is a ranked view over one statistic
type Leaderboard struct {
	Stat    roster.Stat  `json:"stat"`
	Players []PlayerView `json:"players"`
}

// SessionView describes the signed-in identity
type SessionView struct {
	Authenticated bool   `json:"authenticated"`
	ID            string `json:"id,omitempty"`
	Rol           string `json:"rol,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p PlayerView) {
	fmt.Fprintf(o.out, "Player: %s (%s)\n", p.FullName(), p.ID)
	if p.Apodo != "" {
		fmt.Fprintf(o.out, "Nickname: %s\n", p.Apodo)
	}
	if p.Nacionalidad != "" {
		fmt.Fprintf(o.out, "Nationality: %s\n", p.Nacionalidad)
	}
	if p.Posicion != "" {
		fmt.Fprintf(o.out, "Position: %s\n", p.Posicion)
	}
	fmt.Fprintf(o.out, "Goals: %d\n", p.Goles)
	fmt.Fprintf(o.out, "Assists: %d\n", p.Asistencias)
	fmt.Fprintf(o.out, "Matches: %d (won %d, lost %d)\n", p.PartidosJugados, p.PartidosGanados, p.PartidosPerdidos)
	if p.Fecha != "" {
		fmt.Fprintf(o.out, "Registered: %s\n", p.Fecha)
	}
}

func (o *Output) printPlayers(players []PlayerView) {
	if len(players) == 0 {
		fmt.Fprintln(o.out, "No players")
		return
	}

	tw := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tNICKNAME\tPOS\tGOALS\tASSISTS\tPLAYED\tWON\tLOST")
	for _, p := range players {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			p.ID, p.FullName(), p.Apodo, p.Posicion,
			p.Goles, p.Asistencias, p.PartidosJugados, p.PartidosGanados, p.PartidosPerdidos)
	}
	_ = tw.Flush()
}

func (o *Output) printLeaderboard(l Leaderboard) {
	title := "Top scorers"
	if l.Stat == roster.StatAssists {
		title = "Top assists"
	}
	fmt.Fprintln(o.out, title)
	fmt.Fprintln(o.out, strings.Repeat("-", len(title)))

	tw := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	for i, p := range l.Players {
		value := p.Goles
		if l.Stat == roster.StatAssists {
			value = p.Asistencias
		}
		fmt.Fprintf(tw, "%d.\t%s\t%d\n", i+1, p.FullName(), value)
	}
	_ = tw.Flush()
}

func (o *Output) printSession(s SessionView) {
	if !s.Authenticated {
		fmt.Fprintln(o.out, "Not signed in")
		return
	}
	fmt.Fprintf(o.out, "Signed in as %s (%s)\n", s.ID, s.Rol)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.out, "Status: %s\n", h.Status)
}
