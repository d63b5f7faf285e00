package gorm

import (
	"context"
	"net/http"
	"time"

	"github.com/wader/gormstore/v2"
	"gorm.io/gorm"
)

// sessionCleanupInterval - период удаления просроченных сессий из таблицы sessions
const sessionCleanupInterval = time.Hour

// NewSessionStore создаёт хранилище сессий в той же базе (таблица sessions).
// Просроченные сессии чистятся в фоне до отмены ctx.
func NewSessionStore(ctx context.Context, db *gorm.DB, secret []byte, maxAge int, secure bool) *gormstore.Store {
	store := gormstore.New(db, secret)
	store.SessionOpts.MaxAge = maxAge
	store.SessionOpts.HttpOnly = true
	store.SessionOpts.Secure = secure
	store.SessionOpts.SameSite = http.SameSiteLaxMode
	store.SessionOpts.Path = "/"

	quit := make(chan struct{})
	go store.PeriodicCleanup(sessionCleanupInterval, quit)
	go func() {
		<-ctx.Done()
		close(quit)
	}()

	return store
}
