package auth_test

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/nmoreno/alquiler-api/internal/application/auth"
	"github.com/nmoreno/alquiler-api/internal/application/dto"
	"github.com/nmoreno/alquiler-api/internal/application/usecase"
	"github.com/nmoreno/alquiler-api/internal/domain"
	"github.com/nmoreno/alquiler-api/internal/domain/entity"
	"github.com/nmoreno/alquiler-api/internal/infrastructure/memory"
	pkgjwt "github.com/nmoreno/alquiler-api/pkg/jwt"
	"github.com/nmoreno/alquiler-api/pkg/password"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "alquiler-api-test"
)

var testJWTCfg = appauth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[int]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Correo == user.Correo {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	user.ID = r.seq
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id int) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(correo string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Correo == correo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) delete(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// fakeMailer captura el último mail para que el test extraiga el link de reset.
type fakeMailer struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.to, m.subject, m.body = to, subject, htmlBody
	return nil
}

var resetTokenRe = regexp.MustCompile(`token=([0-9a-f]+)&id=(\d+)`)

// resetToken extrae el secreto del link del mail capturado.
func (m *fakeMailer) resetToken(t *testing.T) string {
	t.Helper()
	match := resetTokenRe.FindStringSubmatch(m.body)
	require.Len(t, match, 3, "el mail debe incluir el link de reset con token e id")
	return match[1]
}

// newTestAuth arma el use case con fakes y un usuario registrado.
func newTestAuth(t *testing.T) (*appauth.AuthUseCase, *fakeUserRepo, *fakeMailer, *dto.UserResponse) {
	t.Helper()
	repo := newFakeUserRepo()
	hasher := password.NewHasher(4)
	mailer := &fakeMailer{}
	store := memory.NewResetTokenStore(15 * time.Minute)
	authUC := appauth.NewAuthUseCase(repo, store, mailer, hasher, testJWTCfg, "https://front.example.com")

	userUC := usecase.NewUserUseCase(repo, hasher)
	created, err := userUC.Register(dto.RegisterRequest{
		Nombre:   "A",
		Correo:   "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return authUC, repo, mailer, created
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_TokenDecodificaSubYRol(t *testing.T) {
	authUC, _, _, created := newTestAuth(t)

	out, err := authUC.Login(dto.LoginRequest{Correo: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "Login exitoso", out.Message)
	assert.Equal(t, created.ID, out.User.ID)
	assert.Equal(t, "empleado", out.User.Rol, "sin rol explícito el usuario nace empleado")

	userID, rol, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "empleado", rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)

	_, err := authUC.Login(dto.LoginRequest{Correo: "a@x.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)

	_, err := authUC.Login(dto.LoginRequest{Correo: "nadie@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	authUC, repo, _, created := newTestAuth(t)

	u, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, repo.Update(u))

	_, err = authUC.Login(dto.LoginRequest{Correo: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

// ──────────────────────────────────────────────────────────────────────────────
// Me
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_DevuelveUsuarioSinPassword(t *testing.T) {
	authUC, _, _, created := newTestAuth(t)

	user, err := authUC.Me(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "A", user.Nombre)
	assert.Equal(t, "a@x.com", user.Correo)
	assert.True(t, user.IsActive)
}

func TestMe_UsuarioDesaparecido(t *testing.T) {
	authUC, repo, _, created := newTestAuth(t)

	repo.delete(created.ID)

	_, err := authUC.Me(created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_EnviaMailConLink(t *testing.T) {
	authUC, _, mailer, _ := newTestAuth(t)

	require.NoError(t, authUC.ForgotPassword("a@x.com"))

	assert.Equal(t, "a@x.com", mailer.to)
	assert.Equal(t, "Recuperar contraseña", mailer.subject)
	assert.Contains(t, mailer.body, "https://front.example.com/recuperar-contraseña?token=")
	assert.NotEmpty(t, mailer.resetToken(t))
}

func TestForgotPassword_EmailDesconocido(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)

	err := authUC.ForgotPassword("nadie@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestResetPassword_FlujoCompleto(t *testing.T) {
	authUC, _, mailer, created := newTestAuth(t)

	require.NoError(t, authUC.ForgotPassword("a@x.com"))
	raw := mailer.resetToken(t)

	require.NoError(t, authUC.ResetPassword(created.ID, raw, "nueva-password"))

	// La contraseña vieja deja de servir y la nueva funciona.
	_, err := authUC.Login(dto.LoginRequest{Correo: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	out, err := authUC.Login(dto.LoginRequest{Correo: "a@x.com", Password: "nueva-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestResetPassword_ReplayDelMismoToken(t *testing.T) {
	authUC, _, mailer, created := newTestAuth(t)

	require.NoError(t, authUC.ForgotPassword("a@x.com"))
	raw := mailer.resetToken(t)

	require.NoError(t, authUC.ResetPassword(created.ID, raw, "nueva-password"))

	err := authUC.ResetPassword(created.ID, raw, "otra-mas")
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}

func TestResetPassword_EmisionNuevaInvalidaLaAnterior(t *testing.T) {
	authUC, _, mailer, created := newTestAuth(t)

	require.NoError(t, authUC.ForgotPassword("a@x.com"))
	primero := mailer.resetToken(t)

	require.NoError(t, authUC.ForgotPassword("a@x.com"))
	segundo := mailer.resetToken(t)
	require.NotEqual(t, primero, segundo)

	err := authUC.ResetPassword(created.ID, primero, "nueva-password")
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)

	require.NoError(t, authUC.ResetPassword(created.ID, segundo, "nueva-password"))
}

func TestResetPassword_TokenAjeno(t *testing.T) {
	authUC, _, _, created := newTestAuth(t)

	err := authUC.ResetPassword(created.ID, "token-nunca-emitido", "nueva-password")
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}
