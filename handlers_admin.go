package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kidandcat/promanager/internal/db"
)

const activityFeedSize = 10

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats()
	if err != nil {
		s.log.Error().Err(err).Msg("stats")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": st})
}

func (s *server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers()
	if err != nil {
		s.log.Error().Err(err).Msg("list users")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": users})
}

func (s *server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == currentUser(r).ID {
		writeError(w, http.StatusBadRequest, "لا يمكنك حذف حسابك")
		return
	}
	err := s.store.DeleteUser(id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "المستخدم غير موجود")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("delete user")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "تم حذف المستخدم بنجاح"})
}

func (s *server) handleToggleUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == currentUser(r).ID {
		writeError(w, http.StatusBadRequest, "لا يمكنك تعطيل حسابك")
		return
	}
	active, err := s.store.ToggleUser(id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "المستخدم غير موجود")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("toggle user")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	msg := "تم تعطيل الحساب"
	if active {
		msg = "تم تفعيل الحساب"
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": active, "message": msg})
}

func (s *server) handleActivities(w http.ResponseWriter, r *http.Request) {
	acts, err := s.store.Activities(activityFeedSize)
	if err != nil {
		s.log.Error().Err(err).Msg("activities")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": acts})
}
