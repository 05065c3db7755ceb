package auth

import (
	"fmt"

	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/domain"
	"github.com/construmart/construmart-api/internal/domain/repository"
	"github.com/construmart/construmart-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// PasswordHasher puerto mínimo para verificar contraseñas con la sal almacenada.
type PasswordHasher interface {
	Compare(secret, salt, expectedHash string) bool
}

// AuthUseCase caso de uso de autenticación: login de clientes verificados.
type AuthUseCase struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	hasher    PasswordHasher
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, customers repository.CustomerRepository, hasher PasswordHasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, customers: customers, hasher: hasher, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash salado con el SecurityStamp,
// exige cuenta activada y devuelve token JWT + perfil del cliente.
// Cuentas sin verificar reciben domain.ErrAccountInactive.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !uc.hasher.Compare(in.Password, user.SecurityStamp, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	customer, err := uc.customers.GetByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Customer: dto.CustomerResponse{
			ID:               customer.ID,
			Firstname:        customer.Firstname,
			Lastname:         customer.Lastname,
			Email:            user.Email,
			PhoneNumber:      user.PhoneNumber,
			IsActive:         user.IsActive,
			IsEmailConfirmed: user.IsEmailConfirmed,
			CreatedAt:        customer.CreatedAt,
		},
	}, nil
}
