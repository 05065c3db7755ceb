package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/domain"
	"github.com/construmart/construmart-api/internal/domain/entity"
	"github.com/construmart/construmart-api/internal/domain/repository"
	"github.com/construmart/construmart-api/pkg/logger"
)

// Mensajes visibles para el usuario (contrato de la API).
const (
	MsgCheckEmail = "Please complete your registration using the one time password sent to your email"
	MsgInvalidOTP = "Invalid OTP"
	MsgOTPExpired = "OTP has expired"
)

// UseCase orquesta el registro y la verificación de clientes: emisión y hash
// del OTP, escritura atómica de User/EncryptedCode/Customer y notificación.
// Todas las dependencias entran por constructor.
type UseCase struct {
	users    repository.UserRepository
	codes    repository.EncryptedCodeRepository
	tx       TxRunner
	hasher   Hasher
	issuer   CodeIssuer
	notifier Notifier
	sender   Sender
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de onboarding.
func NewUseCase(
	users repository.UserRepository,
	codes repository.EncryptedCodeRepository,
	tx TxRunner,
	hasher Hasher,
	issuer CodeIssuer,
	notifier Notifier,
	sender Sender,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		users:    users,
		codes:    codes,
		tx:       tx,
		hasher:   hasher,
		issuer:   issuer,
		notifier: notifier,
		sender:   sender,
		log:      log,
	}
}

// CreateCustomer registra un cliente: verifica unicidad del email, emite y
// hashea el OTP, persiste User (inactivo), EncryptedCode y Customer en una
// transacción, y despacha el correo con el código después del commit.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está tomado; cualquier
// fallo de persistencia se propaga al caller, nunca se enmascara como éxito.
func (uc *UseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) error {
	exists, err := uc.users.ExistsByEmail(in.Email)
	if err != nil {
		return fmt.Errorf("verificar email: %w", err)
	}
	if exists {
		return domain.ErrEmailAlreadyExists
	}

	code, err := uc.issuer.Generate()
	if err != nil {
		return fmt.Errorf("emitir otp: %w", err)
	}
	codeSalt, err := uc.hasher.GenerateSalt()
	if err != nil {
		return err
	}
	stamp, err := uc.hasher.GenerateSalt()
	if err != nil {
		return err
	}

	now := time.Now()
	user := &entity.User{
		ID:                     uuid.New().String(),
		Email:                  in.Email,
		PasswordHash:           uc.hasher.Hash(in.Password, stamp),
		SecurityStamp:          stamp,
		PhoneNumber:            in.PhoneNumber,
		IsActive:               false,
		IsEmailConfirmed:       false,
		IsPhoneNumberConfirmed: false,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	encrypted := &entity.EncryptedCode{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Salt:      codeSalt,
		CodeHash:  uc.hasher.Hash(code, codeSalt),
		Expiry:    uc.issuer.ExpiresAt(now),
		Purpose:   entity.PurposeCustomerOnboarding,
		CreatedAt: now,
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.tx.RunOnboarding(ctx, func(
		users repository.UserRepository,
		codes repository.EncryptedCodeRepository,
		customers repository.CustomerRepository,
	) error {
		// El insert del user es la red de seguridad real contra registros
		// concurrentes: el constraint único de email gana la carrera y se
		// mapea al mismo error de conflicto que el pre-chequeo.
		if err := users.Create(user); err != nil {
			return err
		}
		if err := codes.Create(encrypted); err != nil {
			return err
		}
		return customers.Create(customer)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("email", in.Email).Msg("registro de cliente falló al persistir")
		return err
	}

	// Notificación desacoplada del commit: la respuesta al caller no espera
	// la entrega, pero un fallo queda registrado.
	go uc.dispatchOTPEmail(user.Email, code)

	return nil
}

func (uc *UseCase) dispatchOTPEmail(to, code string) {
	msg := Message{
		From:     uc.sender.Address,
		FromName: uc.sender.Name,
		To:       to,
		Subject:  "Your Account Registration",
		HTMLBody: fmt.Sprintf("<h4>Please use the one time password <b>%s</b> to activate your account</h4>", code),
	}
	if err := uc.notifier.Send(context.Background(), msg); err != nil {
		uc.log.Error().Err(err).Str("to", to).Msg("envío del correo de registro falló")
	}
}

// VerifyCustomer compara el OTP presentado contra el hash almacenado y, si
// coincide y no expiró, activa la cuenta. Los resultados negativos esperados
// (OTP inválido o expirado) se devuelven como sentinelas de dominio, no como
// fallos del sistema.
func (uc *UseCase) VerifyCustomer(ctx context.Context, in dto.VerifyCustomerRequest) error {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	code, err := uc.codes.GetByUserID(user.ID)
	if err != nil {
		return fmt.Errorf("buscar código: %w", err)
	}
	if code == nil {
		return domain.ErrCodeNotFound
	}

	if code.Expired(time.Now()) {
		return domain.ErrCodeExpired
	}
	if !uc.hasher.Compare(in.OTP, code.Salt, code.CodeHash) {
		return domain.ErrInvalidOTP
	}

	user.Activate(time.Now())
	if err := uc.users.Activate(user); err != nil {
		uc.log.Error().Err(err).Str("user_id", user.ID).Msg("persistir activación falló")
		return domain.ErrActivationFailed
	}

	return nil
}
