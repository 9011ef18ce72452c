package entity

import "time"

// Roles de usuario de la API.
const (
	RolAdministrador = "admin"
	RolOperador      = "operador"
	RolConsulta      = "consulta"
)

// Usuario cuenta de acceso a la API administrativa.
type Usuario struct {
	ID           string // uuid
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Estatus      string

	CreadoEn      time.Time
	ActualizadoEn time.Time
}
