package auth

import (
	"fmt"
	"net/url"
	"time"

	"github.com/nmoreno/alquiler-api/internal/application/dto"
	"github.com/nmoreno/alquiler-api/internal/domain"
	"github.com/nmoreno/alquiler-api/internal/domain/entity"
	"github.com/nmoreno/alquiler-api/internal/domain/repository"
	"github.com/nmoreno/alquiler-api/pkg/jwt"
	"github.com/nmoreno/alquiler-api/pkg/password"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, usuario actual y
// recuperación de contraseña.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	resetTokens ResetTokenStore
	mailer      Mailer
	hasher      *password.Hasher
	jwtCfg      JWTConfig
	frontURL    string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	resetTokens ResetTokenStore,
	mailer Mailer,
	hasher *password.Hasher,
	jwtCfg JWTConfig,
	frontURL string,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		resetTokens: resetTokens,
		mailer:      mailer,
		hasher:      hasher,
		jwtCfg:      jwtCfg,
		frontURL:    frontURL,
	}
}

// Login verifica correo/password, genera el token de sesión y retorna token + usuario.
// Los mensajes distinguen usuario inexistente de contraseña incorrecta; ese
// comportamiento viene del frontend y se conserva.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Correo)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	ok, err := uc.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		User: dto.UserView{
			ID:     user.ID,
			Nombre: user.Nombre,
			Correo: user.Correo,
			Rol:    user.Rol,
		},
	}, nil
}

// Me devuelve la vista del usuario autenticado (sin password).
// Retorna ErrUserNotFound si el usuario referido por el token ya no existe.
func (uc *AuthUseCase) Me(userID int) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ForgotPassword emite un token de reset y envía el link por mail.
// Retorna ErrUserNotFound si el correo no corresponde a ningún usuario.
func (uc *AuthUseCase) ForgotPassword(email string) error {
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	rawToken, err := uc.resetTokens.Issue(user.ID)
	if err != nil {
		return err
	}

	resetURL := uc.buildResetURL(rawToken, user.ID)
	return uc.mailer.Send(user.Correo, "Recuperar contraseña", resetEmailBody(user.Nombre, resetURL))
}

// ResetPassword consume el token de reset y persiste la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(userID int, rawToken, newPassword string) error {
	if err := uc.resetTokens.Consume(userID, rawToken); err != nil {
		return err
	}
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// buildResetURL arma el link de recuperación. Sin FRONT_URL configurada el
// link queda relativo; se loguea como warning en el arranque.
func (uc *AuthUseCase) buildResetURL(rawToken string, userID int) string {
	return fmt.Sprintf("%s/recuperar-contraseña?token=%s&id=%d", uc.frontURL, url.QueryEscape(rawToken), userID)
}

func resetEmailBody(nombre, resetURL string) string {
	return fmt.Sprintf(`
    <div style="max-width: 520px; margin:0; padding: 20px;">
        <h2>Recupera tu contraseña</h2>
        <p>Hola %s, recibimos tu solicitud para restablecer la contraseña.</p>
        <p>Hace click en el boton para continuar.</p>
        <p>
            <a href="%s">Cambiar contraseña</a>
        </p>
        <p>Si no fuiste vos, podes ignorar el mensaje</p>
    </div>
    `, nombre, resetURL)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Correo:    u.Correo,
		Rol:       u.Rol,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
