package usecase

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/domain/repository"
	"friendlyeats/internal/infrastructure/session"
	"friendlyeats/pkg/errors"
	"friendlyeats/pkg/logger"
)

var nameShape = regexp.MustCompile(`^[A-Za-z]+([ '-][A-Za-z]+)*$`)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	sessions     *session.Store
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, sessions *session.Store) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		sessions:     sessions,
	}
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

type SignInResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) SignUp(ctx context.Context, input SignUpInput) error {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateName(name); err != nil {
		return err
	}
	if err := validatePassword(input.Password); err != nil {
		return err
	}

	// Both email and display name are unique across accounts. Only a
	// definitive not-found counts as absence; a failed lookup must not
	// let a duplicate through.
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return errors.Internal("Unable to create your account right now.", err)
	}
	if existing != nil {
		return errors.Conflict("An account already exists with that email address.")
	}

	existing, err = uc.userRepo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return errors.Internal("Unable to create your account right now.", err)
	}
	if existing != nil {
		return errors.Conflict("An account already exists with that name.")
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, email, input.Password, name)
	if err != nil {
		return errors.Internal("Unable to create your account right now.", err)
	}

	user := &entity.User{
		ID:    uid,
		Name:  name,
		Email: email,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return errors.Internal("Unable to create your account right now.", err)
	}

	return nil
}

func (uc *AuthUseCase) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	idToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Sign in rejected for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	token, err := uc.sessions.Issue(session.Profile{
		UID:         user.ID,
		Email:       user.Email,
		DisplayName: user.Name,
	})
	if err != nil {
		return nil, err
	}

	return &SignInResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) SignOut(ctx context.Context, token string) error {
	uc.sessions.Revoke(token)
	return nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func validateName(name string) error {
	if len(name) < 3 {
		return errors.BadRequest("Name must be at least 3 characters.", nil)
	}
	if !nameShape.MatchString(name) {
		return errors.BadRequest("Name can only include letters, spaces, apostrophes, or hyphens.", nil)
	}
	// Reject the same word repeated back to back ("bob bob").
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '\'' || r == '-'
	})
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			return errors.BadRequest("Name cannot repeat the same word.", nil)
		}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.BadRequest("Password must be at least 8 characters.", nil)
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasLetter || !hasDigit || !hasSymbol {
		return errors.BadRequest("Password must include a letter, a number, and a symbol.", nil)
	}
	return nil
}
