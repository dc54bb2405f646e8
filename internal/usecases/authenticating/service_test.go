package authenticating

import (
	"testing"
	"time"

	"github.com/franpass87/esperienze-insights-api/infrastructure/repository/mocks"
	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

func newAuthService(ctrl *gomock.Controller) (Authenticator, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{Auth: config.Auth{Secret: testSecret}}

	return NewService(userRepo, cfg), userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Francesco",
		Email:        "admin@fpesperienze.it",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
	}
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Credenciais válidas - token assinado e verificável", func(t *testing.T) {
		service, userRepo := newAuthService(ctrl)
		user := activeUser(t, "senha-forte")

		userRepo.EXPECT().GetUserByEmail("admin@fpesperienze.it").Return(user, nil)

		token, err := service.LoginUser("admin@fpesperienze.it", "senha-forte")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.RoleID, claims.UserRoleID)
	})

	t.Run("Usuário inexistente - credenciais inválidas", func(t *testing.T) {
		service, userRepo := newAuthService(ctrl)

		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(nil, nil)

		_, err := service.LoginUser("ninguem@fpesperienze.it", "qualquer")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário desativado - login negado", func(t *testing.T) {
		service, userRepo := newAuthService(ctrl)
		user := activeUser(t, "senha-forte")
		user.Active = false

		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(user, nil)

		_, err := service.LoginUser("admin@fpesperienze.it", "senha-forte")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Senha incorreta - credenciais inválidas", func(t *testing.T) {
		service, userRepo := newAuthService(ctrl)

		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(activeUser(t, "senha-forte"), nil)

		_, err := service.LoginUser("admin@fpesperienze.it", "senha-errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Token adulterado - inválido", func(t *testing.T) {
		service, _ := newAuthService(ctrl)

		_, err := service.ValidateToken("cabecalho.corpo.assinatura")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token expirado - erro específico de expiração", func(t *testing.T) {
		service, _ := newAuthService(ctrl)

		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		tokenString, err := expired.SignedString([]byte(testSecret))
		assert.NoError(t, err)

		_, err = service.ValidateToken(tokenString)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo - inválido", func(t *testing.T) {
		service, _ := newAuthService(ctrl)

		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		tokenString, err := forged.SignedString([]byte("outro-segredo"))
		assert.NoError(t, err)

		_, err = service.ValidateToken(tokenString)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Novo usuário - senha armazenada como hash e conta ativa", func(t *testing.T) {
		service, userRepo := newAuthService(ctrl)

		userRepo.EXPECT().GetUserByEmail("novo@fpesperienze.it").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.True(t, user.Active)
			assert.NotEqual(t, "senha-forte", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte")))
			user.ID = 7
			return user, nil
		})

		created, err := service.CreateUser(&domain.User{
			Name:   "Operador",
			Email:  "novo@fpesperienze.it",
			RoleID: 2,
		}, "senha-forte")

		assert.NoError(t, err)
		assert.Equal(t, 7, created.ID)
	})

	t.Run("Email já cadastrado - erro de duplicidade", func(t *testing.T) {
		service, userRepo := newAuthService(ctrl)

		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(activeUser(t, "x"), nil)

		_, err := service.CreateUser(&domain.User{Email: "admin@fpesperienze.it"}, "senha")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Usuário inexistente - erro de não encontrado", func(t *testing.T) {
		service, userRepo := newAuthService(ctrl)

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		_, err := service.GetUserProfile(99)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
