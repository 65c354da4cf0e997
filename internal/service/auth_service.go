package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/internal/repository"
	"github.com/sefazor/eventmate-backend/pkg/apperror"
	"github.com/sefazor/eventmate-backend/pkg/bcrypt"
	"github.com/sefazor/eventmate-backend/pkg/geolocate"
	jwtPkg "github.com/sefazor/eventmate-backend/pkg/jwt"
	"github.com/sefazor/eventmate-backend/pkg/password"
)

// geolocateTimeout bounds the fire-and-forget location seeding after login.
const geolocateTimeout = 3 * time.Second

// Geolocator resolves an approximate position for the calling host.
type Geolocator interface {
	Locate(ctx context.Context) (*geolocate.Position, error)
}

// WelcomeEmailer sends the post-registration welcome email.
type WelcomeEmailer interface {
	SendWelcomeEmail(to, username string) error
}

type AuthService struct {
	userRepo     repository.UserRepository
	tokens       *jwtPkg.TokenService
	geolocator   Geolocator     // may be nil when no API key is configured
	emailService WelcomeEmailer // may be nil
	logger       *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *jwtPkg.TokenService,
	geolocator Geolocator,
	emailService WelcomeEmailer,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokens:       tokens,
		geolocator:   geolocator,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	if missing := password.Check(req.Password); len(missing) > 0 {
		return nil, apperror.New(apperror.KindWeakPassword,
			"Password must include "+strings.Join(missing, ", ")+".")
	}

	// Pre-checks give the common case a precise error; the unique indexes
	// below are what actually hold under concurrent registrations.
	exists, err := s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.New(apperror.KindUsernameTaken, "Username already taken")
	}

	exists, err = s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.New(apperror.KindEmailTaken, "Email already in use")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent registration won the race after the pre-checks.
			return nil, s.classifyDuplicate(req.Username)
		}
		return nil, apperror.Internal(err)
	}

	if s.emailService != nil {
		go func() {
			if err := s.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
				s.logger.Warn("welcome email failed", zap.String("username", user.Username), zap.Error(err))
			}
		}()
	}

	return user, nil
}

func (s *AuthService) classifyDuplicate(username string) *apperror.AppError {
	taken, err := s.userRepo.UsernameExists(username)
	if err == nil && taken {
		return apperror.New(apperror.KindUsernameTaken, "Username already taken")
	}
	return apperror.New(apperror.KindEmailTaken, "Email already in use")
}

// dummyHash is a valid bcrypt hash of a throwaway value. Logins for unknown
// usernames are compared against it so both rejection paths cost one bcrypt
// verification and response timing does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login verifies credentials and issues a bearer token. The error shape and
// timing are identical whether the username is unknown or the password is
// wrong.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		_ = bcrypt.ComparePassword(dummyHash, req.Password)
		return nil, apperror.New(apperror.KindInvalidCredentials, "Invalid username or password")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, apperror.New(apperror.KindInvalidCredentials, "Invalid username or password")
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if s.geolocator != nil && !user.HasLocation() {
		go s.seedLocation(user.ID, user.Username)
	}

	return &models.AuthResponse{
		Token:    token,
		Username: user.Username,
	}, nil
}

// seedLocation fills in missing coordinates after a successful login.
// Failures are logged and swallowed; the login has already succeeded.
func (s *AuthService) seedLocation(userID uint, username string) {
	ctx, cancel := context.WithTimeout(context.Background(), geolocateTimeout)
	defer cancel()

	pos, err := s.geolocator.Locate(ctx)
	if err != nil {
		s.logger.Debug("geolocation lookup failed", zap.String("username", username), zap.Error(err))
		return
	}

	if err := s.userRepo.UpdateLocation(userID, pos.Latitude, pos.Longitude); err != nil {
		s.logger.Warn("failed to seed user location", zap.String("username", username), zap.Error(err))
	}
}
