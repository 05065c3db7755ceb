package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construmart/construmart-api/internal/application/auth"
	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/domain"
	"github.com/construmart/construmart-api/internal/domain/entity"
	"github.com/construmart/construmart-api/pkg/credentials"
)

type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) Create(*entity.User) error            { return nil }
func (r *stubUserRepo) GetByID(string) (*entity.User, error) { return r.user, nil }
func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}
func (r *stubUserRepo) ExistsByEmail(string) (bool, error) { return r.user != nil, nil }
func (r *stubUserRepo) Activate(*entity.User) error        { return nil }
func (r *stubUserRepo) Update(*entity.User) error          { return nil }

type stubCustomerRepo struct {
	customer *entity.Customer
}

func (r *stubCustomerRepo) Create(*entity.Customer) error            { return nil }
func (r *stubCustomerRepo) GetByID(string) (*entity.Customer, error) { return r.customer, nil }
func (r *stubCustomerRepo) GetByUserID(userID string) (*entity.Customer, error) {
	if r.customer != nil && r.customer.UserID == userID {
		return r.customer, nil
	}
	return nil, nil
}
func (r *stubCustomerRepo) List(int, int) ([]*entity.Customer, error) { return nil, nil }

func buildFixture(t *testing.T, active bool) (*auth.AuthUseCase, *credentials.Hasher) {
	t.Helper()
	hasher := credentials.NewHasher(1000)
	stamp, err := hasher.GenerateSalt()
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		ID:            "u-1",
		Email:         "a@b.com",
		PasswordHash:  hasher.Hash("secreta-123", stamp),
		SecurityStamp: stamp,
		IsActive:      active,
		CreatedAt:     now,
	}
	customer := &entity.Customer{ID: "c-1", UserID: "u-1", Firstname: "Ada", Lastname: "Rojas", CreatedAt: now}

	uc := auth.NewAuthUseCase(
		&stubUserRepo{user: user},
		&stubCustomerRepo{customer: customer},
		hasher,
		auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "construmart-test"},
	)
	return uc, hasher
}

func TestLogin_CuentaActivaConPasswordCorrecta(t *testing.T) {
	uc, _ := buildFixture(t, true)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "secreta-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Ada", out.Customer.Firstname)
	assert.True(t, out.Customer.IsActive)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := buildFixture(t, true)

	_, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaSinVerificar(t *testing.T) {
	uc, _ := buildFixture(t, false)

	_, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive,
		"una cuenta sin verificar no debe poder iniciar sesión")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildFixture(t, true)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@b.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
