// internal/service/auth_service_test.go
package service_test // メインコードとは別のパッケージにすることで、公開されているものしかテストできなくなり、より良いテストになる

import (
	"context"
	"testing"
	"time"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository/mocks"
	"exam_prep_keep/internal/service"
	servicemocks "exam_prep_keep/internal/service/mocks" // Mailerのモック

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストスイートの定義 ---
// 関連するテストと、共通のセットアップをまとめる
type AuthServiceTestSuite struct {
	suite.Suite // testifyのSuiteを埋め込む

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
	// 各テストの前に、モックを新しく生成してクリーンな状態にする
	s.mockUserRepo = new(mocks.UserRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockMailer = new(servicemocks.Mailer)

	// トランザクションとアカウント有効化の直接更新のためにSQLiteのインメモリDBを使う
	db, err := gorm.Open(sqlite.Open("file:authtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&model.User{}))
	s.Require().NoError(db.Exec("DELETE FROM users").Error)
	s.db = db

	// テスト用のダミー設定
	s.cfg = &config.Config{}
	s.cfg.App.Name = "ExamPrepKeep"
	s.cfg.App.FrontendURL = "http://localhost:3000"
	s.cfg.JWT.SecretKey = "test-secret"
	s.cfg.JWT.AccessTokenTTL = 15 * time.Minute

	// テスト対象のサービスにモックを注入してインスタンスを生成
	s.authService = service.NewAuthService(s.db, s.mockUserRepo, s.mockTokenRepo, s.mockMailer, s.cfg)
}

// --- テストランナー ---
// この関数が `go test` から実際に呼ばれる
func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- Registerメソッドのテスト ---
func (s *AuthServiceTestSuite) TestRegister() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "Success - 正常に登録できる",
			req:  &model.RegisterRequest{Email: "test@example.com", Password: "password123", FirstName: "太郎", LastName: "田中"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.NoError(err)
				s.NotNil(user)
				s.Equal("test@example.com", user.Email)
				// 有効化されるまでは非アクティブ
				s.False(user.IsActive)
				s.NotEmpty(user.PasswordHash)
			},
		},
		{
			name: "Failure - Emailが重複している",
			req:  &model.RegisterRequest{Email: "test@example.com", Password: "password123"},
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
			name: "Failure - 作成時に重複を検知 (レースコンディション)",
			req:  &model.RegisterRequest{Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(model.ErrConflict).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - 確認メールの送信に失敗",
			req:  &model.RegisterRequest{Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(model.ErrInternalServer).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			// 1. Arrange (準備)
			tc.setupMocks()

			// 2. Act (実行)
			createdUser, err := s.authService.Register(context.Background(), tc.req)

			// 3. Assert (検証)
			tc.checkResult(createdUser, err)

			// モックの呼び出しが期待通りだったか全体を検証
			s.mockUserRepo.AssertExpectations(s.T())
			s.mockTokenRepo.AssertExpectations(s.T())
			s.mockMailer.AssertExpectations(s.T())
		})
	}
}

// --- Loginメソッドのテスト ---
func (s *AuthServiceTestSuite) TestLogin() {
	userID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	activeUser := &model.User{
		UserID:       userID,
		Email:        "taro@example.com",
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
			name: "Success - 正常にログインできる",
			req:  &model.LoginRequest{Email: "taro@example.com", Password: "correct-password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").Return(activeUser, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.NoError(err)
				s.NotNil(resp)
				s.NotEmpty(resp.AccessToken)
				s.Equal("Bearer", resp.TokenType)
				s.Equal(int((15 * time.Minute).Seconds()), resp.ExpiresIn)
				s.Equal(userID, resp.User.UserID)
			},
		},
		{
			name: "Failure - ユーザーが存在しない",
			req:  &model.LoginRequest{Email: "nobody@example.com", Password: "whatever"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				s.ErrorIs(err, model.ErrUnauthorized)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - パスワードが一致しない",
			req:  &model.LoginRequest{Email: "taro@example.com", Password: "wrong-password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").Return(activeUser, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				s.ErrorIs(err, model.ErrUnauthorized)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - アカウントが未有効化",
			req:  &model.LoginRequest{Email: "taro@example.com", Password: "correct-password"},
			setupMocks: func() {
				inactive := *activeUser
				inactive.IsActive = false
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").Return(&inactive, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				s.ErrorIs(err, model.ErrForbidden)
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
	s.Run("Success - トークンが有効ならアカウントを有効化する", func() {
		s.SetupTest()

		user := &model.User{
			UserID:       uuid.New(),
			Email:        "taro@example.com",
			PasswordHash: "dummy",
			IsActive:     false,
		}
		s.Require().NoError(s.db.Create(user).Error)

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "valid-token").
			Return(&model.UserVerificationToken{
				Token:     "valid-token",
				UserID:    user.UserID,
				ExpiresAt: time.Now().Add(1 * time.Hour),
			}, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "valid-token").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "valid-token")

		s.NoError(err)

		// DB上のユーザーが有効化されていること
		var activated model.User
		s.Require().NoError(s.db.First(&activated, "user_id = ?", user.UserID).Error)
		s.True(activated.IsActive)
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - トークンが存在しない", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "missing-token").
			Return(nil, model.ErrNotFound).Once()

		err := s.authService.VerifyAccount(context.Background(), "missing-token")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
	})

	s.Run("Failure - トークンの有効期限切れ", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "expired-token").
			Return(&model.UserVerificationToken{
				Token:     "expired-token",
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-1 * time.Hour),
			}, nil).Once()
		// 期限切れトークンは削除される
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "expired-token").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "expired-token")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
		s.mockTokenRepo.AssertExpectations(s.T())
	})
}

// --- パスワード再設定のテスト ---
func (s *AuthServiceTestSuite) TestRequestPasswordReset() {
	s.Run("Success - 再設定メールを送信する", func() {
		s.SetupTest()

		user := &model.User{UserID: uuid.New(), Email: "taro@example.com", IsActive: true}
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").Return(user, nil).Once()
		s.mockTokenRepo.On("DeletePasswordResetTokensByUser", mock.Anything, mock.Anything, user.UserID).Return(nil).Once()
		s.mockTokenRepo.On("CreatePasswordResetToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		s.mockMailer.On("Send", mock.Anything, "taro@example.com", mock.Anything, mock.Anything).Return(nil).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "taro@example.com")

		s.NoError(err)
		s.mockMailer.AssertExpectations(s.T())
	})

	s.Run("Success - 存在しないメールでもエラーにしない", func() {
		s.SetupTest()

		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "nobody@example.com")

		// ユーザーの存在を悟られないよう成功扱い
		s.NoError(err)
		s.mockMailer.AssertNotCalled(s.T(), "Send")
	})
}

func (s *AuthServiceTestSuite) TestResetPassword() {
	s.Run("Success - パスワードを更新しトークンを削除する", func() {
		s.SetupTest()

		user := &model.User{
			UserID:       uuid.New(),
			Email:        "taro@example.com",
			PasswordHash: "old-hash",
			IsActive:     true,
		}
		s.Require().NoError(s.db.Create(user).Error)

		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "reset-token").
			Return(&model.PasswordResetToken{
				Token:     "reset-token",
				UserID:    user.UserID,
				ExpiresAt: time.Now().Add(30 * time.Minute),
			}, nil).Once()
		s.mockTokenRepo.On("DeletePasswordResetTokensByUser", mock.Anything, mock.Anything, user.UserID).Return(nil).Once()

		err := s.authService.ResetPassword(context.Background(), "reset-token", "new-password-123")

		s.NoError(err)

		var updated model.User
		s.Require().NoError(s.db.First(&updated, "user_id = ?", user.UserID).Error)
		s.NotEqual("old-hash", updated.PasswordHash)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password-123")))
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - トークンが無効", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "bad-token").
			Return(nil, model.ErrNotFound).Once()

		err := s.authService.ResetPassword(context.Background(), "bad-token", "new-password-123")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
	})
}
