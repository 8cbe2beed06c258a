// Package token inspecciona el token de sesión que el dashboard arrastra en
// cada petición. El panel no verifica la firma (eso es del backend remoto,
// que es quien lo emitió) pero sí hace una pre-comprobación de expiración
// para cortar en el panel las sesiones claramente vencidas.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt devuelve la expiración declarada en el token, sin verificar la
// firma. Retorna error si el token no es un JWT parseable o no declara exp
// (un token opaco no-JWT no se puede pre-comprobar).
func ExpiresAt(tokenString string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, fmt.Errorf("token: no es un JWT parseable: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token: sin claim exp")
	}
	return claims.ExpiresAt.Time, nil
}

// Expired indica si el token está vencido con certeza. Un token que no se
// puede inspeccionar (opaco, sin exp) NO se considera vencido: la decisión
// final siempre es del backend remoto.
func Expired(tokenString string, now time.Time) bool {
	exp, err := ExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return now.After(exp)
}
