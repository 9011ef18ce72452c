package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/dto"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
	"github.com/PJECZ/pjecz-perseo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de usuarios y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// CrearUsuario hashea el password con bcrypt y persiste. ErrEmailAlreadyExists
// si el email ya está dado de alta.
func (uc *AuthUseCase) CrearUsuario(ctx context.Context, email, password, nombre, rol string) (*dto.UsuarioResponse, error) {
	existente, _ := uc.usuarioRepo.BuscarPorEmail(ctx, email)
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if rol == "" {
		rol = entity.RolConsulta
	}
	ahora := time.Now()
	usuario := &entity.Usuario{
		ID:            uuid.New().String(),
		Email:         email,
		PasswordHash:  string(hash),
		Nombre:        nombre,
		Rol:           rol,
		Estatus:       entity.EstatusActivo,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}
	if err := uc.usuarioRepo.Crear(ctx, usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.BuscarPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Estatus != entity.EstatusActivo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Email:    u.Email,
		Nombre:   u.Nombre,
		Rol:      u.Rol,
		Estatus:  u.Estatus,
		CreadoEn: u.CreadoEn,
	}
}
