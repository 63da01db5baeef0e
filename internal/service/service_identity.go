package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// identityService is the concrete implementation of IdentityService.
// It handles user registration, credential verification, profile updates
// and JWT token lifecycle using a UserRepository for persistence and
// bcrypt over an HMAC-SHA256 pepper for password hashing.
type identityService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// hashKey is the HMAC pepper applied to passwords before bcrypt. Must
	// match the value used at registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewIdentityService constructs a new IdentityService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewIdentityService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account and issues its first session token.
//
// Returns the persisted user or:
//   - *MissingFieldsError if username, phone, password, email or birthday is absent.
//   - ErrBadBirthday if the birthday cannot be decoded or is out of range.
//   - store.ErrUserAlreadyExists if the username, phone or email is taken.
func (s *identityService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, err
	}

	birthday, err := models.ParseBirthday(req.Birthday)
	if err != nil {
		return models.User{}, models.Token{}, ErrBadBirthday
	}
	if err = birthday.Validate(); err != nil {
		return models.User{}, models.Token{}, ErrBadBirthday
	}

	user := models.User{
		Username: strings.TrimSpace(req.Username),
		Nickname: strings.TrimSpace(req.Nickname),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    normalizeEmail(req.Email),
		Birthday: birthday,
	}
	if user.Nickname == "" {
		user.Nickname = user.Username
	}

	exists, err := s.userRepository.ExistsByIdentity(ctx, user.Username, user.Phone, user.Email)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if exists {
		log.Info().Str("username", user.Username).Msg("registration rejected: identity already taken")
		return models.User{}, models.Token{}, store.ErrUserAlreadyExists
	}

	user.PasswordHash, err = utils.HashPassword(req.Password, s.hashKey)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	// a concurrent registration may still win; the unique indexes map it to
	// store.ErrUserAlreadyExists
	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := s.CreateToken(ctx, registeredUser.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user and issues a fresh token.
//
// Returns the authenticated user record or:
//   - *MissingFieldsError if username or password is absent.
//   - store.ErrUserNotFound (wrapped) if the username is unknown.
//   - ErrBadCredentials if the password does not match.
func (s *identityService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, err
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.ComparePassword(foundUser.PasswordHash, req.Password, s.hashKey)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	if !ok {
		log.Info().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrBadCredentials
	}

	token, err := s.CreateToken(ctx, foundUser.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

func (s *identityService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

// UpdateProfile applies the present fields of patch. The patch type has no
// password field, so a password sent here never reaches storage.
func (s *identityService) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.User, error) {
	if patch.Nickname != nil {
		nickname := strings.TrimSpace(*patch.Nickname)
		if nickname == "" {
			return models.User{}, ErrEmptyNickname
		}
		patch.Nickname = &nickname
	}
	if patch.Birthday != nil {
		if err := patch.Birthday.Validate(); err != nil {
			return models.User{}, ErrBadBirthday
		}
	}

	var missing []string
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if phone == "" {
			missing = append(missing, validators.FieldPhone)
		}
		patch.Phone = &phone
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		if email == "" {
			missing = append(missing, validators.FieldEmail)
		}
		patch.Email = &email
	}
	if len(missing) > 0 {
		return models.User{}, &MissingFieldsError{Fields: missing}
	}

	return s.userRepository.UpdateUser(ctx, userID, patch)
}

func (s *identityService) UpdateNickname(ctx context.Context, userID, nickname string) (models.User, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return models.User{}, ErrEmptyNickname
	}

	return s.userRepository.UpdateUser(ctx, userID, models.ProfilePatch{Nickname: &nickname})
}

// CreateToken issues a signed JWT whose subject is userID.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (s *identityService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (s *identityService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// AssertOwner returns ErrForbidden unless currentUserID created the entity.
func AssertOwner(createdBy, currentUserID string) error {
	if createdBy == "" || createdBy != currentUserID {
		return ErrForbidden
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
