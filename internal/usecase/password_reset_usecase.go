package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
)

var (
	ErrMissingCredential   = errors.New("missing bearer credential")
	ErrInvalidCredential   = errors.New("invalid bearer credential")
	ErrNotAdmin            = errors.New("caller is not an admin")
	ErrInvalidResetRequest = errors.New("user id and new password are required")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordUpdate      = errors.New("password update failed")
)

const MinPasswordLength = 6

// IPasswordResetUseCase lets an administrator set a new password for another user.
//
// Checks run in this order and stop at the first failure:
//   - bearer credential present and valid
//   - caller holds the admin role
//   - target id and password present, password length
//   - target user exists

type IPasswordResetUseCase interface {
	Reset(ctx context.Context, bearer string, targetUserID string, newPassword string) error
}

type PasswordResetUseCase struct {
	tokens interfaces.ITokenVerifier
	roles  interfaces.IRoleChecker
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	log    logrus.FieldLogger
}

var _ IPasswordResetUseCase = (*PasswordResetUseCase)(nil)

func NewPasswordResetUseCase(tokens interfaces.ITokenVerifier, roles interfaces.IRoleChecker, users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, logger logrus.FieldLogger) *PasswordResetUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PasswordResetUseCase{tokens: tokens, roles: roles, users: users, hasher: hasher, log: logger}
}

func (u *PasswordResetUseCase) Reset(ctx context.Context, bearer string, targetUserID string, newPassword string) error {
	bearer = strings.TrimSpace(bearer)
	if bearer == "" {
		return ErrMissingCredential
	}
	claims, err := u.tokens.Verify(bearer)
	if err != nil || claims.UserID == "" {
		u.log.WithError(err).Warn("[password][usecase] invalid credential")
		return ErrInvalidCredential
	}

	isAdmin, err := u.roles.HasRole(ctx, claims.UserID, entities.RoleAdmin)
	if err != nil {
		u.log.WithError(err).WithField("caller_id", claims.UserID).Error("[password][usecase] role check failed")
		return fmt.Errorf("role check: %w", err)
	}
	if !isAdmin {
		u.log.WithField("caller_id", claims.UserID).Warn("[password][usecase] caller is not admin")
		return ErrNotAdmin
	}

	targetUserID = strings.TrimSpace(targetUserID)
	if targetUserID == "" || newPassword == "" {
		return ErrInvalidResetRequest
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	target, err := u.users.GetByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if target.ID == "" {
		return ErrUserNotFound
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		u.log.WithError(err).Error("[password][usecase] hash failed")
		return fmt.Errorf("%w: %v", ErrPasswordUpdate, err)
	}
	if err := u.users.UpdatePassword(ctx, target.ID, hash); err != nil {
		u.log.WithError(err).WithField("user_id", target.ID).Error("[password][usecase] update failed")
		return fmt.Errorf("%w: %v", ErrPasswordUpdate, err)
	}

	u.log.WithFields(logrus.Fields{"caller_id": claims.UserID, "user_id": target.ID}).Info("[password][usecase] password reset")
	return nil
}
