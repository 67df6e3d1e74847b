package repositories

import (
	"context"
	"errors"
	"time"

	"maestro/internal/database"
	. "maestro/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const (
	USER_CACHE_EXPIRY = 24 * time.Hour
	OIDC_CACHE_PREFIX = "oidc:"
)

type UserRepository interface {
	GetByOIDCUserID(ctx context.Context, oidcUserID string) (*User, error)
	FindOrCreateOIDCUser(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) error
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) GetByOIDCUserID(ctx context.Context, oidcUserID string) (*User, error) {
	log := r.log.Function("GetByOIDCUserID")

	var user User
	if found := r.getCachedByOIDC(ctx, oidcUserID, &user); found {
		return &user, nil
	}

	if err := r.db.SQLWithContext(ctx).First(&user, "oidc_user_id = ?", oidcUserID).Error; err != nil {
		return nil, log.Err("failed to get user by OIDC user ID", err, "oidcUserID", oidcUserID)
	}

	if err := r.cacheByOIDC(ctx, &user); err != nil {
		log.Warn("failed to cache user", "oidcUserID", oidcUserID, "error", err)
	}

	return &user, nil
}

func (r *userRepository) FindOrCreateOIDCUser(ctx context.Context, user *User) (*User, error) {
	log := r.log.Function("FindOrCreateOIDCUser")

	if user.OIDCUserID == "" {
		return nil, log.ErrMsg("user OIDC user ID cannot be empty")
	}

	var existing User
	err := r.db.SQLWithContext(ctx).First(&existing, "oidc_user_id = ?", user.OIDCUserID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to look up user", err, "oidcUserID", user.OIDCUserID)
	}

	if err := r.db.SQLWithContext(ctx).Create(user).Error; err != nil {
		return nil, log.Err("failed to create user", err, "oidcUserID", user.OIDCUserID)
	}

	log.Info("Created new user", "oidcUserID", user.OIDCUserID, "displayName", user.DisplayName)
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *User) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(user).Error; err != nil {
		return log.Err("failed to update user", err, "userID", user.ID)
	}

	if user.OIDCUserID != "" {
		cacheKey := OIDC_CACHE_PREFIX + user.OIDCUserID
		if err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).WithContext(ctx).Delete(); err != nil {
			log.Warn("failed to clear user cache after update", "userID", user.ID, "error", err)
		}
	}

	return nil
}

func (r *userRepository) getCachedByOIDC(ctx context.Context, oidcUserID string, user *User) bool {
	cacheKey := OIDC_CACHE_PREFIX + oidcUserID
	found, err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).WithContext(ctx).Get(user)
	if err != nil {
		r.log.Function("getCachedByOIDC").
			Warn("failed to get user from cache", "oidcUserID", oidcUserID, "error", err)
		return false
	}
	return found
}

func (r *userRepository) cacheByOIDC(ctx context.Context, user *User) error {
	cacheKey := OIDC_CACHE_PREFIX + user.OIDCUserID
	return database.NewCacheBuilder(r.db.Cache.User, cacheKey).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
