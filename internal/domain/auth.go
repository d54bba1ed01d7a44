package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/authenticator"
	"github.com/mylinked/backend/pkg/crypto"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	VerifyOAuth2(context.Context, *model.OAuth2VerifyRequest) (*model.OAuth2VerifyResponse, error)
	Refresh(context.Context, *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error)
	Logout(context.Context, *model.LogoutRequest) (*model.LogoutResponse, error)
}

type authDomain struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	emailRepo        repository.EmailRepository
	oidcServices     map[string]authenticator.IOIDCService
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	emailRepo repository.EmailRepository,
	oidcServices []authenticator.IOIDCService,
) *authDomain {
	oidcMap := map[string]authenticator.IOIDCService{}
	for _, s := range oidcServices {
		oidcMap[s.Service()] = s
	}

	return &authDomain{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailRepo:        emailRepo,
		oidcServices:     oidcMap,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Username == "" || req.Email == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username or email")
	}

	if len(req.Password) < 8 {
		return nil, errorx.New(errorx.BadRequest, "Require a password of at least 8 characters")
	}

	if _, err := d.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This username is already taken")
	}

	if _, err := d.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
		DisplayName:    displayName,
		Role:           entity.UserRole,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	QueueEmail(ctx, d.emailRepo, user.ID, user.Email, WelcomeTemplate)

	return &model.RegisterResponse{User: model.ConvertUser(user, 0)}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) VerifyOAuth2(
	ctx context.Context, req *model.OAuth2VerifyRequest,
) (*model.OAuth2VerifyResponse, error) {
	service, ok := d.oidcServices[xcontext.Configs(ctx).Auth.Google.Name]
	if !ok {
		return nil, errorx.New(errorx.Unavailable, "Sign-in provider is not configured")
	}

	oauth2User, err := service.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Failed to verify id token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid id token")
	}

	user, err := d.userRepo.GetByEmail(ctx, oauth2User.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
			return nil, errorx.Unknown
		}

		user, err = d.createOAuth2User(ctx, oauth2User)
		if err != nil {
			return nil, err
		}
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.OAuth2VerifyResponse{
		User:         model.ConvertUser(user, 0),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Refresh(
	ctx context.Context, req *model.RefreshTokenRequest,
) (*model.RefreshTokenResponse, error) {
	refreshToken := model.RefreshToken{}
	err := xcontext.TokenEngine(ctx).Verify(req.RefreshToken, &refreshToken)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Failed to verify refresh token: %v", err)
		return nil, errorx.Unknown
	}

	hashedFamily := crypto.SHA256([]byte(refreshToken.Family))
	storageToken, err := d.refreshTokenRepo.Get(ctx, hashedFamily)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get refresh token family: %v", err)
		return nil, errorx.Unknown
	}

	if storageToken.Expiration.Before(time.Now()) {
		return nil, errorx.New(errorx.TokenExpired, "Your refresh token is expired")
	}

	// The delete and rotate queries are independent, no transaction here.
	if refreshToken.Counter != storageToken.Counter {
		if err := d.refreshTokenRepo.Delete(ctx, hashedFamily); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete refresh token: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.StolenDetected,
			"Your refresh token will be revoked because it is detected as stolen")
	}

	err = d.refreshTokenRepo.Rotate(ctx, hashedFamily, storageToken.Counter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot rotate the refresh token: %v", err)
		return nil, errorx.Unknown
	}

	newRefreshToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.RefreshToken.Expiration,
		model.RefreshToken{
			Family:  refreshToken.Family,
			Counter: refreshToken.Counter + 1,
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, storageToken.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	newAccessToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{ID: user.ID, Username: user.Username})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RefreshTokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (d *authDomain) Logout(
	ctx context.Context, _ *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	err := d.refreshTokenRepo.DeleteByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot revoke refresh tokens: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LogoutResponse{}, nil
}

func (d *authDomain) createOAuth2User(
	ctx context.Context, oauth2User authenticator.OAuth2User,
) (*entity.User, error) {
	username, _, _ := strings.Cut(oauth2User.Username, "@")
	if _, err := d.userRepo.GetByUsername(ctx, username); err == nil {
		username = username + "_" + crypto.GenerateRandomAlphabet(4)
	}

	user := &entity.User{
		Base:        entity.Base{ID: uuid.NewString()},
		Username:    username,
		Email:       oauth2User.Username,
		DisplayName: username,
		Role:        entity.UserRole,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}

func (d *authDomain) generateTokens(
	ctx context.Context, user *entity.User,
) (string, string, error) {
	accessToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{ID: user.ID, Username: user.Username})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return "", "", errorx.Unknown
	}

	family, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token family: %v", err)
		return "", "", errorx.Unknown
	}

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.RefreshToken.Expiration,
		model.RefreshToken{Family: family, Counter: 0})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return "", "", errorx.Unknown
	}

	err = d.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		Family:     crypto.SHA256([]byte(family)),
		UserID:     user.ID,
		Counter:    0,
		Expiration: time.Now().Add(xcontext.Configs(ctx).Auth.RefreshToken.Expiration),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store refresh token: %v", err)
		return "", "", errorx.Unknown
	}

	return accessToken, refreshToken, nil
}
