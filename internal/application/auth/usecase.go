package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mercadito/internal/application/dto"
	"github.com/tu-usuario/mercadito/internal/domain"
	"github.com/tu-usuario/mercadito/internal/domain/entity"
	"github.com/tu-usuario/mercadito/internal/domain/repository"
	"github.com/tu-usuario/mercadito/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt (costo por defecto,
// salt por registro) y persiste. La unicidad del username la garantiza el
// constraint del store; un duplicado llega como domain.ErrUsernameTaken.
// Un rol fuera del conjunto {client, seller} se degrada a client.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if !entity.ValidRole(role) {
		role = entity.RoleClient
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password y emite un token de sesión. El rol
// embebido en el token es el almacenado al momento del login; no se vuelve
// a consultar el store en cada request.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, *dto.UserResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer)
	if err != nil {
		return "", nil, err
	}
	return token, toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
