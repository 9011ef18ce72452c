package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios de la API.
type UsuarioRepository interface {
	// BuscarPorEmail devuelve el usuario o nil si no existe.
	BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Crear(ctx context.Context, usuario *entity.Usuario) error
}
