package model

// Delta is a match-feedback increment for the four statistics
type Delta struct {
	Goles            int `json:"goles"`
	Asistencias      int `json:"asistencias"`
	PartidosGanados  int `json:"partidosGanados"`
	PartidosPerdidos int `json:"partidosPerdidos"`
}

// Validate rejects negative increments
func (d Delta) Validate() error {
	if d.Goles < 0 || d.Asistencias < 0 || d.PartidosGanados < 0 || d.PartidosPerdidos < 0 {
		return ErrNegativeDelta
	}
	return nil
}

// IsZero reports whether applying d changes nothing
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// ApplyDelta returns a copy of p with d added to its statistics.
// It reads only p, so a caller holding a stale record will overwrite
// newer server-side values when the result is sent as a full update.
func ApplyDelta(p Player, d Delta) Player {
	p.Goles += d.Goles
	p.Asistencias += d.Asistencias
	p.PartidosGanados += d.PartidosGanados
	p.PartidosPerdidos += d.PartidosPerdidos
	return p
}
