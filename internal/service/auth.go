package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/store"
	"github.com/cookmate/backend/internal/types"
)

const bcryptCost = 10

type AuthService struct {
	db        *gorm.DB
	users     *store.UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
	log       *zap.Logger
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		db:        db,
		users:     store.NewUserStore(db),
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Signup creates the account and returns it together with a fresh token.
func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", invalid("email and password", "are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Height:       req.Height,
		Weight:       req.Weight,
		Age:          req.Age,
		Gender:       req.Gender,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", storageErr("create user", err)
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.log.Info("user signed up", zap.Int64("user_id", user.ID))
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", invalid("email and password", "are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", storageErr("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken signs an HS256 token carrying the user id.
func (s *AuthService) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// DeleteAccount removes the user with their favorites, ratings and preferences.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := store.NewFavoriteStore(tx).DeleteForUser(ctx, userID); err != nil {
			return err
		}
		if err := store.NewRatingStore(tx).DeleteForUser(ctx, userID); err != nil {
			return err
		}
		if err := store.NewPreferenceStore(tx).DeleteForUser(ctx, userID); err != nil {
			return err
		}
		return s.users.WithTx(tx).Delete(ctx, userID)
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrUserNotFound
	case err != nil:
		return storageErr("delete account", err)
	}
	s.log.Info("account deleted", zap.Int64("user_id", userID))
	return nil
}
