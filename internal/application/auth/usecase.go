package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-clientes-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// TelefonoPorDefecto se asigna al cliente creado en el registro cuando no se envía teléfono.
const TelefonoPorDefecto = "000000000"

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		clientes repository.ClienteRepository,
		tokens repository.TokenRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación y sesión: registro, login,
// logout, perfil y resolución de tokens bearer.
type AuthUseCase struct {
	users    repository.UserRepository
	clientes repository.ClienteRepository
	tokens   repository.TokenRepository
	tx       TxRunner
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, clientes repository.ClienteRepository, tokens repository.TokenRepository, tx TxRunner) *AuthUseCase {
	return &AuthUseCase{users: users, clientes: clientes, tokens: tokens, tx: tx}
}

// Register crea User, Cliente vinculado y token inicial en una sola transacción:
// si cualquier paso falla no queda ni el User ni el Cliente.
// Un email ya usado se reporta como error de validación del campo email.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if existing, err := uc.users.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ValidationErrors{"email": "el email ya está registrado"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rol := in.Rol
	if rol == "" {
		rol = entity.RolCliente
	}
	telefono := in.Telefono
	if telefono == "" {
		telefono = TelefonoPorDefecto
	}
	plaintext, tokenHash, err := token.Generate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(ctx, func(users repository.UserRepository, clientes repository.ClienteRepository, tokens repository.TokenRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		cliente := &entity.Cliente{
			ID:            uuid.New().String(),
			UserID:        &user.ID,
			Nombre:        user.Name,
			Email:         user.Email,
			Telefono:      telefono,
			FechaRegistro: now,
		}
		if err := clientes.Create(ctx, cliente); err != nil {
			return err
		}
		return tokens.Create(ctx, &entity.Token{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			TokenHash: tokenHash,
			CreatedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailYaRegistrado) {
			return nil, domain.ValidationErrors{"email": "el email ya está registrado"}
		}
		return nil, err
	}

	return &dto.AuthResponse{
		User:      toUserResponse(user),
		Token:     plaintext,
		TokenType: "Bearer",
	}, nil
}

// Login verifica credenciales, revoca los tokens anteriores del usuario y
// emite uno nuevo. El fallo es uniforme: no distingue email desconocido de
// contraseña incorrecta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}

	plaintext, tokenHash, err := token.Generate()
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(_ repository.UserRepository, _ repository.ClienteRepository, tokens repository.TokenRepository) error {
		if _, err := tokens.RevokeAllByUser(ctx, user.ID); err != nil {
			return err
		}
		return tokens.Create(ctx, &entity.Token{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			TokenHash: tokenHash,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:      toUserResponse(user),
		Token:     plaintext,
		TokenType: "Bearer",
	}, nil
}

// Logout revoca exactamente el token presentado.
func (uc *AuthUseCase) Logout(ctx context.Context, plaintext string) error {
	return uc.tokens.RevokeByHash(ctx, token.Hash(plaintext))
}

// ResolveToken mapea un token bearer entrante al usuario que lo posee.
// Devuelve ErrTokenInvalido si fue revocado o nunca existió.
func (uc *AuthUseCase) ResolveToken(ctx context.Context, plaintext string) (*entity.User, error) {
	if plaintext == "" {
		return nil, domain.ErrTokenInvalido
	}
	t, err := uc.tokens.GetByHash(ctx, token.Hash(plaintext))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTokenInvalido
	}
	user, err := uc.users.GetByID(ctx, t.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrTokenInvalido
	}
	return user, nil
}

// Me proyecta el usuario autenticado.
func (uc *AuthUseCase) Me(user *entity.User) dto.UserResponse {
	return toUserResponse(user)
}

// Perfil devuelve usuario más cliente vinculado; falla con ErrSinPerfilCliente
// para cuentas sin perfil (administrador/vendedor o inconsistencia de datos).
func (uc *AuthUseCase) Perfil(ctx context.Context, user *entity.User) (*dto.PerfilResponse, error) {
	cliente, err := uc.clientes.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrSinPerfilCliente
	}
	return &dto.PerfilResponse{
		User:    toUserResponse(user),
		Cliente: toClienteResponse(cliente),
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Rol:   u.Rol,
	}
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ClienteID:     c.ID,
		UserID:        c.UserID,
		Nombre:        c.Nombre,
		DNI:           c.DNI,
		Telefono:      c.Telefono,
		Email:         c.Email,
		Direccion:     c.Direccion,
		Preferencias:  c.Preferencias,
		Contacto:      c.Contacto,
		FechaRegistro: c.FechaRegistro,
	}
}
