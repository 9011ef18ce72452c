package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// BuscarPorEmail devuelve el usuario o nil si no existe.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nombre, rol, estatus, creado, modificado
		FROM usuarios
		WHERE email = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol,
		&u.Estatus, &u.CreadoEn, &u.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return &u, nil
}

// Crear inserta el usuario. El email es único.
func (r *UsuarioRepo) Crear(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, password_hash, nombre, rol, estatus, creado, modificado)
		VALUES ($1, $2, $3, $4, $5, 'A', NOW(), NOW())
		RETURNING creado, modificado`
	err := r.q.QueryRow(ctx, query,
		usuario.ID, usuario.Email, usuario.PasswordHash, usuario.Nombre, usuario.Rol,
	).Scan(&usuario.CreadoEn, &usuario.ActualizadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	usuario.Estatus = entity.EstatusActivo
	return nil
}
