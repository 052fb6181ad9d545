package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-clientes-api/internal/application/auth"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	users    map[string]*entity.User    // por id
	clientes map[string]*entity.Cliente // por id
	tokens   map[string]*entity.Token   // por hash
}

func newStore() *store {
	return &store{
		users:    map[string]*entity.User{},
		clientes: map[string]*entity.Cliente{},
		tokens:   map[string]*entity.Token{},
	}
}

func (s *store) snapshot() *store {
	cp := newStore()
	for k, v := range s.users {
		u := *v
		cp.users[k] = &u
	}
	for k, v := range s.clientes {
		c := *v
		cp.clientes[k] = &c
	}
	for k, v := range s.tokens {
		t := *v
		cp.tokens[k] = &t
	}
	return cp
}

func (s *store) restore(from *store) {
	s.users = from.users
	s.clientes = from.clientes
	s.tokens = from.tokens
}

type userRepo struct{ s *store }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	for _, existente := range r.s.users {
		if existente.Email == u.Email {
			return domain.ErrEmailYaRegistrado
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type clienteRepo struct {
	s          *store
	failCreate error
}

func (r *clienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *c
	r.s.clientes[c.ID] = &cp
	return nil
}

func (r *clienteRepo) GetByID(_ context.Context, id string) (*entity.Cliente, error) {
	if c, ok := r.s.clientes[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *clienteRepo) GetByUserID(_ context.Context, userID string) (*entity.Cliente, error) {
	for _, c := range r.s.clientes {
		if c.UserID != nil && *c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *clienteRepo) GetByTelefono(context.Context, string) (*entity.Cliente, error) {
	return nil, nil
}
func (r *clienteRepo) EmailEnUso(context.Context, string, string) (bool, error) { return false, nil }
func (r *clienteRepo) List(context.Context, repository.ListClientesParams) ([]*entity.Cliente, int, error) {
	return nil, 0, nil
}
func (r *clienteRepo) Update(context.Context, *entity.Cliente) error { return nil }
func (r *clienteRepo) Delete(context.Context, string) error          { return nil }
func (r *clienteRepo) BuscarRapido(context.Context, string, int) ([]*entity.Cliente, error) {
	return nil, nil
}
func (r *clienteRepo) Estadisticas(context.Context, string) (*repository.EstadisticasCliente, error) {
	return &repository.EstadisticasCliente{}, nil
}
func (r *clienteRepo) VentasByCliente(context.Context, string) ([]*entity.Venta, error) {
	return nil, nil
}
func (r *clienteRepo) PedidosByCliente(context.Context, string) ([]*entity.PedidoPersonalizado, error) {
	return nil, nil
}
func (r *clienteRepo) CountVentas(context.Context, string) (int, error) { return 0, nil }
func (r *clienteRepo) Frecuentes(context.Context, int, int) ([]*repository.ClienteFrecuente, error) {
	return nil, nil
}

type tokenRepo struct{ s *store }

func (r *tokenRepo) Create(_ context.Context, t *entity.Token) error {
	cp := *t
	r.s.tokens[t.TokenHash] = &cp
	return nil
}

func (r *tokenRepo) GetByHash(_ context.Context, hash string) (*entity.Token, error) {
	if t, ok := r.s.tokens[hash]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *tokenRepo) RevokeByHash(_ context.Context, hash string) error {
	delete(r.s.tokens, hash)
	return nil
}

func (r *tokenRepo) RevokeAllByUser(_ context.Context, userID string) (int, error) {
	n := 0
	for hash, t := range r.s.tokens {
		if t.UserID == userID {
			delete(r.s.tokens, hash)
			n++
		}
	}
	return n, nil
}

// txRunner emula la semántica transaccional: si fn falla, restaura el estado previo.
type txRunner struct {
	s             *store
	clienteCreate error // error inyectado en clienteRepo.Create dentro de la tx
}

func (r *txRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	clientes repository.ClienteRepository,
	tokens repository.TokenRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&userRepo{r.s}, &clienteRepo{s: r.s, failCreate: r.clienteCreate}, &tokenRepo{r.s})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

func newUseCase(s *store) *auth.AuthUseCase {
	return auth.NewAuthUseCase(&userRepo{s}, &clienteRepo{s: s}, &tokenRepo{s}, &txRunner{s: s})
}

func registroValido() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Ana Lopez",
		Email:    "ana@example.com",
		Password: "secreto123",
		Telefono: "987654321",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Un registro válido crea exactamente un User y un Cliente vinculado con
// nombre/email consistentes, y devuelve un token que resuelve a ese usuario.
func TestRegister_CreaUsuarioClienteYToken(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)

	out, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, entity.RolCliente, out.User.Rol, "rol por defecto debe ser cliente")
	assert.Len(t, s.users, 1)
	assert.Len(t, s.clientes, 1)
	assert.Len(t, s.tokens, 1)

	user := s.users[out.User.ID]
	require.NotNil(t, user)
	assert.NotEqual(t, "secreto123", user.PasswordHash, "la contraseña nunca se guarda en plano")

	var cliente *entity.Cliente
	for _, c := range s.clientes {
		cliente = c
	}
	require.NotNil(t, cliente.UserID)
	assert.Equal(t, user.ID, *cliente.UserID)
	assert.Equal(t, user.Name, cliente.Nombre)
	assert.Equal(t, user.Email, cliente.Email)
	assert.Equal(t, "987654321", cliente.Telefono)

	resuelto, err := uc.ResolveToken(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resuelto.ID)
}

// Sin teléfono en el registro, el cliente queda con el teléfono placeholder.
func TestRegister_TelefonoPorDefecto(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)

	in := registroValido()
	in.Telefono = ""
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	for _, c := range s.clientes {
		assert.Equal(t, auth.TelefonoPorDefecto, c.Telefono)
	}
}

// Registrar un email ya usado falla con error de validación y no crea nada nuevo.
func TestRegister_EmailDuplicado(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)

	_, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	otro := registroValido()
	otro.Name = "Otra Persona"
	_, err = uc.Register(context.Background(), otro)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "email")
	assert.Len(t, s.users, 1, "no debe crearse un segundo usuario")
	assert.Len(t, s.clientes, 1, "no debe crearse un segundo cliente")
}

// Si la creación del cliente falla dentro de la transacción, el usuario y el
// token no deben quedar persistidos (sin usuarios huérfanos).
func TestRegister_FalloEnClienteRevierteTodo(t *testing.T) {
	s := newStore()
	tx := &txRunner{s: s, clienteCreate: errors.New("fallo simulado")}
	uc := auth.NewAuthUseCase(&userRepo{s}, &clienteRepo{s: s}, &tokenRepo{s}, tx)

	_, err := uc.Register(context.Background(), registroValido())
	require.Error(t, err)

	assert.Empty(t, s.users, "el usuario no debe quedar sin su cliente")
	assert.Empty(t, s.clientes)
	assert.Empty(t, s.tokens)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout / sesión
// ──────────────────────────────────────────────────────────────────────────────

// Login correcto devuelve un token que resuelve al usuario correcto.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)
	reg, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.Equal(t, "Bearer", out.TokenType)

	resuelto, err := uc.ResolveToken(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resuelto.ID)
}

// El fallo de login es uniforme: contraseña incorrecta y email desconocido
// devuelven el mismo error, sin distinguir si la cuenta existe.
func TestLogin_FalloUniforme(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)
	_, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	_, errPass := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "incorrecta",
	})
	_, errEmail := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "secreto123",
	})

	assert.ErrorIs(t, errPass, domain.ErrCredenciales)
	assert.ErrorIs(t, errEmail, domain.ErrCredenciales)
}

// Un nuevo login revoca los tokens emitidos antes: el token anterior deja de resolver.
func TestLogin_RevocaTokensAnteriores(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)
	reg, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	login, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	_, err = uc.ResolveToken(context.Background(), reg.Token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalido, "el token del registro quedó revocado")

	_, err = uc.ResolveToken(context.Background(), login.Token)
	assert.NoError(t, err, "el token del login sigue vigente")
	assert.Len(t, s.tokens, 1, "solo queda un token activo tras el login")
}

// Logout revoca exactamente el token presentado; los de otros usuarios siguen vivos.
func TestLogout_RevocaSoloElTokenPresentado(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)
	ana, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	otro := registroValido()
	otro.Email = "luis@example.com"
	luis, err := uc.Register(context.Background(), otro)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), ana.Token))

	_, err = uc.ResolveToken(context.Background(), ana.Token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalido)

	_, err = uc.ResolveToken(context.Background(), luis.Token)
	assert.NoError(t, err, "el token del otro usuario no se ve afectado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestPerfil_DevuelveUsuarioMasCliente(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)
	reg, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	user := s.users[reg.User.ID]
	out, err := uc.Perfil(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, user.Email, out.Cliente.Email)
	assert.Equal(t, "987654321", out.Cliente.Telefono)
}

// Una cuenta sin cliente vinculado (personal de la tienda) no tiene perfil.
func TestPerfil_SinClienteVinculado(t *testing.T) {
	s := newStore()
	uc := newUseCase(s)

	vendedor := &entity.User{ID: "u-1", Name: "Vendedor", Email: "v@example.com", Rol: entity.RolVendedor}
	s.users[vendedor.ID] = vendedor

	_, err := uc.Perfil(context.Background(), vendedor)
	assert.ErrorIs(t, err, domain.ErrSinPerfilCliente)
}
