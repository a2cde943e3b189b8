package service

import (
	"Scoops/config"
	"Scoops/dao"
	"Scoops/dao/cache"
	"Scoops/models"
	"Scoops/pkg/errorx"
	"Scoops/pkg/jwt"
	"Scoops/pkg/log"
	"Scoops/types"
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// errBadCredentials is shared by every login failure so callers cannot tell them apart.
var errBadCredentials = errorx.Unauthorized("invalid login or password")

var comparePassword = bcrypt.CompareHashAndPassword

// dummyHash stands in for the stored hash of a login that does not exist.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("scoops-unknown-login"), bcrypt.DefaultCost)
	return hash
})

type AuthService struct {
	Config        *config.Config
	UsersDAO      *dao.Users
	RefreshTokens *cache.RefreshTokenStorage
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, login, password string) (*types.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	UpdateRole(ctx context.Context, userID int64, role string) error
	SeedAdmin(ctx context.Context) (bool, error)
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	login := models.NormalizeLogin(req.Login)
	if login == "" {
		return nil, errorx.Validation("login is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, errorx.Validation("password must have at least %d characters", minPasswordLength)
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, errorx.Validation("unknown role %q", req.Role)
	}

	exist, err := s.UsersDAO.IsLoginExist(ctx, login)
	if err != nil {
		return nil, errorx.Wrap(err, "check login")
	}
	if exist {
		return nil, errorx.Conflict("login already exists")
	}

	return s.createUser(ctx, login, req.Password, req.Name, role)
}

func (s *AuthService) createUser(ctx context.Context, login, password, name string, role models.Role) (*models.Users, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errorx.Wrap(err, "hash password")
	}
	user := &models.Users{
		Login:    login,
		Name:     name,
		Password: string(hash),
		Role:     role,
		Enabled:  true,
	}
	if err = s.UsersDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.Conflict("login already exists")
		}
		return nil, errorx.Wrap(err, "create user")
	}
	return user, nil
}

// Login runs exactly one bcrypt comparison whether or not the account exists.
func (s *AuthService) Login(ctx context.Context, login, password string) (*types.LoginResponse, error) {
	user, err := s.UsersDAO.FindByLogin(ctx, models.NormalizeLogin(login))
	if err != nil && !dao.IsNotFound(err) {
		return nil, errorx.Wrap(err, "find user")
	}

	hash := dummyHash()
	if user != nil {
		hash = []byte(user.Password)
	}
	matched := comparePassword(hash, []byte(password)) == nil
	if user == nil || !user.Enabled || !matched {
		return nil, errBadCredentials
	}
	return s.issue(ctx, user)
}

// Refresh consumes the refresh token and returns a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.LoginResponse, error) {
	uid, err := s.RefreshTokens.Consume(ctx, refreshToken)
	if errors.Is(err, cache.ErrRefreshTokenNotFound) {
		return nil, errorx.Unauthorized("invalid refresh token")
	}
	if err != nil {
		return nil, errorx.Wrap(err, "consume refresh token")
	}

	user, err := s.UsersDAO.FindById(ctx, uid)
	if dao.IsNotFound(err) {
		return nil, errorx.Unauthorized("invalid refresh token")
	}
	if err != nil {
		return nil, errorx.Wrap(err, "find user")
	}
	if !user.Enabled {
		return nil, errorx.Unauthorized("invalid refresh token")
	}
	return s.issue(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.RefreshTokens.Revoke(ctx, refreshToken); err != nil {
		return errorx.Wrap(err, "revoke refresh token")
	}
	return nil
}

func (s *AuthService) UpdateRole(ctx context.Context, userID int64, role string) error {
	r, ok := models.ParseRole(role)
	if !ok || role == "" {
		return errorx.Validation("unknown role %q", role)
	}
	if _, err := s.UsersDAO.FindById(ctx, userID); err != nil {
		if dao.IsNotFound(err) {
			return errorx.NotFound("user %d not found", userID)
		}
		return errorx.Wrap(err, "find user")
	}
	if _, err := s.UsersDAO.UpdateRole(ctx, userID, r); err != nil {
		return errorx.Wrap(err, "update role")
	}
	return nil
}

// SeedAdmin creates the configured administrator when no user exists yet.
func (s *AuthService) SeedAdmin(ctx context.Context) (bool, error) {
	seed := s.Config.Seed
	if seed.AdminPassword == "" {
		log.L.Info("admin seed skipped, no password configured")
		return false, nil
	}
	count, err := s.UsersDAO.Count(ctx)
	if err != nil {
		return false, errorx.Wrap(err, "count users")
	}
	if count > 0 {
		return false, nil
	}
	if _, err = s.createUser(ctx, models.NormalizeLogin(seed.AdminEmail), seed.AdminPassword, seed.AdminName, models.RoleAdmin); err != nil {
		return false, err
	}
	log.L.Info("admin user seeded", zap.String("login", seed.AdminEmail))
	return true, nil
}

func (s *AuthService) issue(ctx context.Context, user *models.Users) (*types.LoginResponse, error) {
	conf := s.Config.Jwt
	access, err := jwt.GenerateToken([]byte(conf.Secret), conf.Issuer, user.Id, user.Login, string(user.Role), jwt.TypeAccess, conf.AccessTTL)
	if err != nil {
		return nil, errorx.Wrap(err, "sign token")
	}

	refresh := uuid.NewString()
	if err = s.RefreshTokens.Save(ctx, refresh, user.Id, conf.RefreshTTL); err != nil {
		return nil, errorx.Wrap(err, "store refresh token")
	}

	return &types.LoginResponse{
		Id:           user.Id,
		AccessToken:  access,
		TokenType:    "Bearer",
		ExpiresIn:    int64(conf.AccessTTL.Seconds()),
		RefreshToken: refresh,
		Username:     user.Name,
		Email:        user.Login,
		Roles:        []string{string(user.Role)},
	}, nil
}
