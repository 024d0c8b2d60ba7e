package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/kidandcat/promanager/internal/auth"
	"github.com/kidandcat/promanager/internal/db"
)

type contextKey string

const userKey contextKey = "user"

func currentUser(r *http.Request) *db.User {
	if u, ok := r.Context().Value(userKey).(*db.User); ok {
		return u
	}
	return nil
}

func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "غير مصرح، يرجى تسجيل الدخول")
			return
		}
		claims, err := s.issuer.Parse(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مجدداً")
			return
		}
		u, err := s.store.UserByID(claims.UserID)
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "المستخدم غير موجود")
			return
		}
		if err != nil {
			s.log.Error().Err(err).Msg("load user")
			writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
			return
		}
		if !u.IsActive {
			writeError(w, http.StatusForbidden, "تم تعطيل هذا الحساب")
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := currentUser(r)
		if u == nil || !u.IsAdmin() {
			writeError(w, http.StatusForbidden, "هذه الصفحة للمسؤولين فقط")
			return
		}
		next.ServeHTTP(w, r)
	})
}
