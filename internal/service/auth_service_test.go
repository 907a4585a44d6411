package service_test // メインコードとは別のパッケージにすることで、公開されているものしかテストできない

import (
	"context"
	"testing"
	"time"

	"go_ear_training/internal/config"
	"go_ear_training/internal/model"
	"go_ear_training/internal/repository/mocks"
	"go_ear_training/internal/service"
	servicemocks "go_ear_training/internal/service/mocks" // Mailerのモック

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストスイートの定義 ---
type AuthServiceTestSuite struct {
	suite.Suite

	db            *gorm.DB
	mockUserRepo  *mocks.UserRepository
	mockTokenRepo *mocks.TokenRepository
	mockMailer    *servicemocks.Mailer
	cfg           *config.Config
	authService   service.AuthService
}

// --- セットアップメソッド ---
// 各テスト(`TestXxx`)が実行される直前に呼ばれる
func (s *AuthServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	// VerifyAccount / ResetPassword がトランザクション内で users を直接更新するため
	s.Require().NoError(db.AutoMigrate(&model.User{}))
	s.db = db

	s.mockUserRepo = new(mocks.UserRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockMailer = new(servicemocks.Mailer)

	s.cfg = &config.Config{
		App: config.AppConfig{Name: "MimiTore", FrontendURL: "http://localhost:3000"},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}

	s.authService = service.NewAuthService(s.db, s.mockUserRepo, s.mockTokenRepo, s.mockMailer, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- RegisterUserメソッドのテスト ---
func (s *AuthServiceTestSuite) TestRegisterUser() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "Success - 正常に登録できる",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "test@example.com", mock.Anything, mock.Anything).Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.NoError(err)
				s.Require().NotNil(user)
				s.Equal("test@example.com", user.Email)
				s.False(user.IsActive) // メール確認まで無効
				// パスワードは平文で保存されない
				s.NotEqual("password", user.PasswordHash)
				s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password")))
			},
		},
		{
			name: "Failure - Emailが重複している",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(&model.User{}, nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - 確認メールの送信に失敗",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(model.ErrInternalServer).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // モックをリセット

			tc.setupMocks()

			createdUser, err := s.authService.RegisterUser(context.Background(), tc.req)

			tc.checkResult(createdUser, err)

			s.mockUserRepo.AssertExpectations(s.T())
			s.mockTokenRepo.AssertExpectations(s.T())
			s.mockMailer.AssertExpectations(s.T())
		})
	}
}

// --- Loginメソッドのテスト ---
func (s *AuthServiceTestSuite) TestLogin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	activeUser := &model.User{
		UserID:       uuid.New(),
		Email:        "test@example.com",
		PasswordHash: string(hashed),
		IsActive:     true,
	}

	testCases := []struct {
		name        string
		req         *model.LoginRequest
		setupMocks  func()
		checkResult func(resp *model.LoginResponse, err error)
	}{
		{
			name: "Success - 正しい資格情報でトークンが発行される",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "correct-password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(activeUser, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.NoError(err)
				s.Require().NotNil(resp)
				s.NotEmpty(resp.AccessToken)
			},
		},
		{
			name: "Failure - パスワードが違う",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "wrong-password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(activeUser, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - ユーザーが存在しない (同じエラーメッセージを返す)",
			req:  &model.LoginRequest{Email: "unknown@example.com", Password: "whatever"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "unknown@example.com").Return(nil, model.ErrNotFound).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - アカウントが未有効化",
			req:  &model.LoginRequest{Email: "inactive@example.com", Password: "correct-password"},
			setupMocks: func() {
				inactive := *activeUser
				inactive.Email = "inactive@example.com"
				inactive.IsActive = false
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "inactive@example.com").Return(&inactive, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("ACCOUNT_NOT_ACTIVE", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			tc.setupMocks()

			resp, err := s.authService.Login(context.Background(), tc.req)

			tc.checkResult(resp, err)
			s.mockUserRepo.AssertExpectations(s.T())
		})
	}
}

// --- VerifyAccountメソッドのテスト ---
func (s *AuthServiceTestSuite) TestVerifyAccount() {
	s.Run("Success - トークン検証でアカウントが有効化される", func() {
		s.SetupTest()

		user := &model.User{UserID: uuid.New(), Name: "n", Email: "v@example.com", PasswordHash: "x", IsActive: false}
		s.Require().NoError(s.db.Create(user).Error)

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "valid-token").
			Return(&model.UserVerificationToken{
				Token:     "valid-token",
				UserID:    user.UserID,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "valid-token").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "valid-token")

		s.NoError(err)
		var reloaded model.User
		s.Require().NoError(s.db.First(&reloaded, "user_id = ?", user.UserID).Error)
		s.True(reloaded.IsActive)
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - 期限切れトークンは拒否して削除する", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "expired-token").
			Return(&model.UserVerificationToken{
				Token:     "expired-token",
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "expired-token").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "expired-token")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - 存在しないトークン", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "unknown-token").
			Return(nil, model.ErrNotFound).Once()

		err := s.authService.VerifyAccount(context.Background(), "unknown-token")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
	})
}

// --- RequestPasswordResetメソッドのテスト ---
func (s *AuthServiceTestSuite) TestRequestPasswordReset() {
	s.Run("Success - 登録済みメールにはリセットメールを送る", func() {
		s.SetupTest()

		user := &model.User{UserID: uuid.New(), Email: "reset@example.com"}
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "reset@example.com").Return(user, nil).Once()
		s.mockTokenRepo.On("CreatePasswordResetToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		s.mockMailer.On("Send", mock.Anything, "reset@example.com", mock.Anything, mock.Anything).Return(nil).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "reset@example.com")

		s.NoError(err)
		s.mockMailer.AssertExpectations(s.T())
	})

	s.Run("Success - 未登録メールでも成功を装う (列挙攻撃対策)", func() {
		s.SetupTest()

		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "nobody@example.com")

		s.NoError(err)
		s.mockMailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- ResetPasswordメソッドのテスト ---
func (s *AuthServiceTestSuite) TestResetPassword() {
	s.Run("Success - 有効なトークンでパスワードが更新される", func() {
		s.SetupTest()

		user := &model.User{UserID: uuid.New(), Name: "n", Email: "r@example.com", PasswordHash: "old-hash", IsActive: true}
		s.Require().NoError(s.db.Create(user).Error)

		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "reset-token").
			Return(&model.PasswordResetToken{
				Token:     "reset-token",
				UserID:    user.UserID,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil).Once()
		s.mockTokenRepo.On("DeletePasswordResetToken", mock.Anything, mock.Anything, "reset-token").Return(nil).Once()

		err := s.authService.ResetPassword(context.Background(), "reset-token", "new-password")

		s.NoError(err)
		var reloaded model.User
		s.Require().NoError(s.db.First(&reloaded, "user_id = ?", user.UserID).Error)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(reloaded.PasswordHash), []byte("new-password")))
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - 無効なトークン", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "bad-token").
			Return(nil, model.ErrNotFound).Once()

		err := s.authService.ResetPassword(context.Background(), "bad-token", "new-password")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
	})
}
