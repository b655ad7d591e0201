package testutil

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Credential returns an HS256 token carrying id and rol, signed with an
// arbitrary key. A zero exp leaves the claim out.
func Credential(id, rol string, exp time.Time) string {
	claims := jwt.MapClaims{"id": id, "rol": rol}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		panic(err)
	}
	return token
}
