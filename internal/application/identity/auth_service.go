package identity

import (
	"context"

	"github.com/documentflow/backend/internal/domain/identity"
	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/documentflow/backend/internal/infrastructure/auth"
)

// AuthService handles login, token rotation and logout. Failed logins
// always surface as UNAUTHORIZED without distinguishing a missing user
// from a wrong password.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

// Login verifies the credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.Active || !user.CheckPassword(req.Password) {
		return nil, shared.ErrUnauthorized
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    roleNames(user),
	})
	if err != nil {
		return nil, err
	}
	return toTokenResponse(pair), nil
}

// Refresh rotates the token pair. Roles are re-read from the user so a
// role change takes effect on the next rotation, not only on re-login.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if err := s.checkBlacklist(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || !user.Active {
		return nil, shared.ErrUnauthorized
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, roleNames(user))
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	return toTokenResponse(pair), nil
}

// Logout blacklists the token until its natural expiry. A second logout
// with the same token is a no-op.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, ttl)
}

// LogoutEverywhere invalidates every token of the user issued before now.
func (s *AuthService) LogoutEverywhere(ctx context.Context, claims *auth.Claims) error {
	return s.blacklist.AddUserTokensToBlacklist(ctx, claims.UserID, s.jwtService.GetRefreshTokenExpiration())
}

// Me returns the card of the authenticated user.
func (s *AuthService) Me(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// CheckToken validates an access token against the signature and the
// blacklist. Used by the HTTP middleware.
func (s *AuthService) CheckToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if err := s.checkBlacklist(ctx, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *AuthService) checkBlacklist(ctx context.Context, claims *auth.Claims) error {
	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return err
	}
	if blacklisted {
		return shared.ErrUnauthorized
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		return err
	}
	if invalidated {
		return shared.ErrUnauthorized
	}
	return nil
}

func roleNames(user *identity.User) []string {
	names := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		names = append(names, r.Name)
	}
	return names
}

func toTokenResponse(pair *auth.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}
