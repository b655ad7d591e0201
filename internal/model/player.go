package model

import (
	"fmt"
	"strings"
)

// Position is a fixed player position code
type Position string

const (
	PositionGoalkeeper Position = "POR"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MED"
	PositionForward    Position = "DEL"
)

// Positions lists every valid position code in display order
var Positions = []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

var positionNames = map[string]Position{
	"portero":       PositionGoalkeeper,
	"defensa":       PositionDefender,
	"mediocampista": PositionMidfielder,
	"delantero":     PositionForward,
}

// ParsePosition accepts a position code (any case) or its long name.
// An empty string parses to the unset position.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	code := Position(strings.ToUpper(s))
	for _, p := range Positions {
		if p == code {
			return p, nil
		}
	}
	if p, ok := positionNames[strings.ToLower(s)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}

// Valid reports whether p is unset or one of the known codes
func (p Position) Valid() bool {
	if p == "" {
		return true
	}
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// Player is a roster entry as exchanged with the remote API.
// Field names follow the API's wire format.
type Player struct {
	ID           string   `json:"_id,omitempty" msgpack:"id"`
	Nombre       string   `json:"nombre" msgpack:"nombre"`
	Apellidos    string   `json:"apellidos,omitempty" msgpack:"apellidos"`
	Apodo        string   `json:"apodo,omitempty" msgpack:"apodo"`
	Nacionalidad string   `json:"nacionalidad,omitempty" msgpack:"nacionalidad"`
	Posicion     Position `json:"posicion,omitempty" msgpack:"posicion"`

	Goles            int `json:"goles" msgpack:"goles"`
	Asistencias      int `json:"asistencias" msgpack:"asistencias"`
	PartidosGanados  int `json:"partidosGanados" msgpack:"partidos_ganados"`
	PartidosPerdidos int `json:"partidosPerdidos" msgpack:"partidos_perdidos"`

	// Fecha is assigned by the server on creation and is opaque to the client
	Fecha string `json:"fecha,omitempty" msgpack:"fecha"`
}

// IsNew reports whether the player has not been persisted yet
func (p Player) IsNew() bool {
	return p.ID == ""
}

// MatchesPlayed is always derived from wins and losses
func (p Player) MatchesPlayed() int {
	return p.PartidosGanados + p.PartidosPerdidos
}

// FullName joins name and surname
func (p Player) FullName() string {
	return strings.TrimSpace(p.Nombre + " " + p.Apellidos)
}

// Validate checks the fields a client can get wrong before sending
func (p Player) Validate() error {
	if strings.TrimSpace(p.Nombre) == "" {
		return ErrNameRequired
	}
	if p.Goles < 0 || p.Asistencias < 0 || p.PartidosGanados < 0 || p.PartidosPerdidos < 0 {
		return ErrNegativeStat
	}
	if !p.Posicion.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, p.Posicion)
	}
	return nil
}
