package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrTransport    = errors.New("error de conexión con el servidor")
	ErrOpInFlight   = errors.New("operación en curso")
)

// BackendError representa un rechazo del API remoto (4xx) con el detalle
// más específico que el backend haya devuelto. El detalle se muestra al
// usuario tal cual, sin reemplazarlo por un mensaje genérico.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "el servidor rechazó la petición"
}

// AsBackendError devuelve el *BackendError envuelto en err, o nil.
func AsBackendError(err error) *BackendError {
	var be *BackendError
	if errors.As(err, &be) {
		return be
	}
	return nil
}
