package service

import (
	"testing"

	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every session sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Community{}, &model.Role{}, &model.Member{}))
	return db
}

// seedUser inserts a user directly, skipping bcrypt for speed.
func seedUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:       pkg.NewID(),
		Name:     name,
		Email:    email,
		Password: "not-a-real-hash",
	}
	repo := &mysql.UserRepository{DB: db}
	require.NoError(t, repo.Create(user))
	return user
}
