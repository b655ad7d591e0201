package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/hipolitesport/roster/internal/dependencies/clock"
	"github.com/hipolitesport/roster/internal/model"
)

// Claims is the payload carried by a roster credential
type Claims struct {
	ID  string `json:"id"`
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

// Decoder reads an identity out of a credential without checking its
// signature; only the server can do that
type Decoder struct {
	clock  clock.Clock
	parser *jwt.Parser
}

// NewDecoder creates a Decoder that judges expiry against clk
func NewDecoder(clk clock.Clock) *Decoder {
	return &Decoder{
		clock:  clk,
		parser: jwt.NewParser(),
	}
}

// Decode returns the identity in token. A malformed token, one missing
// id or rol, or one whose exp has passed fails with ErrInvalidCredential.
func (d *Decoder) Decode(token string) (model.Identity, error) {
	var claims Claims
	if _, _, err := d.parser.ParseUnverified(token, &claims); err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", model.ErrInvalidCredential, err)
	}

	if claims.ID == "" || claims.Rol == "" {
		return model.Identity{}, fmt.Errorf("%w: missing id or rol claim", model.ErrInvalidCredential)
	}

	if !claims.VerifyExpiresAt(d.clock.Now(), false) {
		return model.Identity{}, fmt.Errorf("%w: expired", model.ErrInvalidCredential)
	}

	return model.Identity{ID: claims.ID, Rol: claims.Rol}, nil
}
