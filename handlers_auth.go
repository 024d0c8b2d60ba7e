package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kidandcat/promanager/internal/auth"
	"github.com/kidandcat/promanager/internal/db"
	"github.com/kidandcat/promanager/internal/models"
)

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	u, err := s.store.UserByEmail(req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			s.log.Error().Err(err).Msg("login lookup")
		}
		writeError(w, http.StatusBadRequest, "البريد الإلكتروني أو كلمة المرور غير صحيحة")
		return
	}
	if !u.IsActive {
		writeError(w, http.StatusForbidden, "تم تعطيل هذا الحساب")
		return
	}
	token, err := s.issuer.Issue(u.ID, string(u.Role))
	if err != nil {
		s.log.Error().Err(err).Msg("issue token")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token, "user": u.User})
}

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.Registration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "جميع الحقول مطلوبة")
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		writeError(w, http.StatusBadRequest, "كلمات المرور غير متطابقة")
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("hash password")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	role := models.RoleMember
	if s.isAdminEmail(req.Email) {
		role = models.RoleAdmin
	}
	u, err := s.store.CreateUser(req.Name, req.Email, hash, role)
	if errors.Is(err, db.ErrDuplicate) {
		writeError(w, http.StatusBadRequest, "البريد الإلكتروني مسجل مسبقاً")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("create user")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	s.log.Info().Str("user", u.ID).Str("role", string(u.Role)).Msg("registered")
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "تم إنشاء الحساب بنجاح", "user": u.User})
}

func (s *server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	if name == "" {
		name = me.Name
	}
	if email == "" {
		email = me.Email
	}
	avatar, err := s.saveUpload(r, "avatar")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}
	u, err := s.store.UpdateProfile(me.ID, name, email, avatar)
	if errors.Is(err, db.ErrDuplicate) {
		s.removeUpload(avatar)
		writeError(w, http.StatusBadRequest, "البريد الإلكتروني مسجل مسبقاً")
		return
	}
	if err != nil {
		s.removeUpload(avatar)
		s.log.Error().Err(err).Msg("update profile")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "تم تحديث الملف الشخصي", "data": u.User})
}
