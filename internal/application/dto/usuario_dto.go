package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Nombre  string    `json:"nombre"`
	Rol     string    `json:"rol"`
	Estatus string    `json:"estatus"`
	CreadoEn time.Time `json:"creado_en"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
