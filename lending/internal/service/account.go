package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const msgInvalidCode = "Invalid or expired code."

// SignUp creates the account with its profile and signs the user in.
func (s *Service) SignUp(ctx context.Context, req model.SignUpRequest) (model.Session, error) {
	fields := map[string]string{}
	if _, err := s.repo.GetUserByUsername(ctx, req.Username); err == nil {
		fields["username"] = "A user with that username already exists."
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.Session{}, err
	}
	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		fields["email"] = "A user with that email already exists."
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.Session{}, err
	}
	if len(fields) > 0 {
		return model.Session{}, &errs.ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(req.Password, s.authCfg.BcryptCost)
	if err != nil {
		return model.Session{}, err
	}
	var user model.User
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		var err error
		user, err = repo.CreateUser(ctx, model.User{
			Username:     req.Username,
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		_, err = repo.EnsureProfile(ctx, user.ID)
		return err
	})
	if err != nil {
		return model.Session{}, err
	}
	s.log.Info("user signed up", zap.Int64("id", user.ID), zap.String("username", user.Username))
	return s.session(user)
}

// Login accepts a username or, when it contains "@", an email address.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.Session, error) {
	var (
		user model.User
		err  error
	)
	if strings.Contains(req.Login, "@") {
		user, err = s.repo.GetUserByEmail(ctx, req.Login)
	} else {
		user, err = s.repo.GetUserByUsername(ctx, req.Login)
	}
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Session{}, errs.ErrInvalidCredentials
		}
		return model.Session{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return model.Session{}, errs.ErrInvalidCredentials
	}
	return s.session(user)
}

func (s *Service) session(u model.User) (model.Session, error) {
	id := auth.Identity{UserID: u.ID, Username: u.Username}
	token, exp, err := s.tokens.Issue(id)
	if err != nil {
		return model.Session{}, errors.Wrap(err, "issue token")
	}
	return model.Session{UserID: u.ID, Username: u.Username, Token: token, ExpiresAt: exp}, nil
}

// Authenticate resolves a session token to its identity.
func (s *Service) Authenticate(token string) (auth.Identity, error) {
	return s.tokens.Parse(token)
}

func (s *Service) ChangePassword(ctx context.Context, me auth.Identity, req model.PasswordChangeRequest) error {
	user, err := s.repo.GetUserByID(ctx, me.UserID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		return errs.NewValidation("old_password", "Your old password was entered incorrectly. Please enter it again.")
	}
	hash, err := auth.HashPassword(req.NewPassword1, s.authCfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.ID, hash)
}

// RequestPasswordReset mails a 6-digit code. Unknown addresses succeed
// silently so the endpoint does not reveal which emails are registered.
func (s *Service) RequestPasswordReset(ctx context.Context, req model.PasswordResetRequest) error {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}
	code, err := resetCode()
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(code, s.authCfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.SaveResetCode(ctx, model.PasswordReset{
		UserID:    user.ID,
		CodeHash:  hash,
		ExpiresAt: s.now().Add(s.resetTTL),
	}); err != nil {
		return err
	}
	return s.mailer.SendResetCode(ctx, user.Email, code)
}

func (s *Service) VerifyPasswordReset(ctx context.Context, req model.PasswordResetVerifyRequest) error {
	invalid := errs.NewValidation("code", msgInvalidCode)
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return invalid
		}
		return err
	}
	reset, err := s.repo.GetResetCode(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return invalid
		}
		return err
	}
	if !s.now().Before(reset.ExpiresAt) || !auth.CheckPassword(reset.CodeHash, req.Code) {
		return invalid
	}
	hash, err := auth.HashPassword(req.NewPassword1, s.authCfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.repo.InTx(ctx, func(repo repository.Repository) error {
		if err := repo.UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
		return repo.DeleteResetCode(ctx, user.ID)
	})
}

func resetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
