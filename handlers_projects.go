package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kidandcat/promanager/internal/db"
	"github.com/kidandcat/promanager/internal/models"
)

func (s *server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects()
	if err != nil {
		s.log.Error().Err(err).Msg("list projects")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": projects})
}

func (s *server) handleMyProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ProjectsByOwner(currentUser(r).ID)
	if err != nil {
		s.log.Error().Err(err).Msg("my projects")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": projects})
}

func (s *server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.ProjectByID(chi.URLParam(r, "id"))
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "المشروع غير موجود")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("get project")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": p})
}

// projectForm reads the multipart project fields. Missing enums fall back to
// the defaults a new project gets; unknown values are rejected.
func projectForm(r *http.Request, base models.Project) (models.Project, string) {
	p := base
	if v := strings.TrimSpace(r.FormValue("title")); v != "" {
		p.Title = v
	}
	if _, ok := r.MultipartForm.Value["description"]; ok {
		p.Description = strings.TrimSpace(r.FormValue("description"))
	}
	if v := strings.TrimSpace(r.FormValue("deadline")); v != "" {
		p.Deadline = v
	}
	if v := r.FormValue("status"); v != "" {
		p.Status = models.Status(v)
	}
	if v := r.FormValue("priority"); v != "" {
		p.Priority = models.Priority(v)
	}
	if v := r.FormValue("category"); v != "" {
		p.Category = models.Category(v)
	}

	if p.Title == "" {
		return p, "عنوان المشروع مطلوب"
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}
	if p.Priority == "" {
		p.Priority = models.PriorityMedium
	}
	if p.Category == "" {
		p.Category = models.CategoryOther
	}
	if !oneOf(p.Status, models.Statuses) || !oneOf(p.Priority, models.Priorities) || !oneOf(p.Category, models.Categories) {
		return p, "قيمة غير صالحة للحالة أو الأولوية أو التصنيف"
	}
	return p, ""
}

func oneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (s *server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	p, msg := projectForm(r, models.Project{})
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	image, err := s.saveUpload(r, "image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}
	p.Image = image

	created, err := s.store.CreateProject(currentUser(r).ID, p)
	if err != nil {
		s.removeUpload(image)
		s.log.Error().Err(err).Msg("create project")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "تم رفع المشروع بنجاح", "data": created})
}

// ownedProject loads project id and checks the caller may change it.
func (s *server) ownedProject(w http.ResponseWriter, r *http.Request) *models.Project {
	p, err := s.store.ProjectByID(chi.URLParam(r, "id"))
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "المشروع غير موجود")
		return nil
	}
	if err != nil {
		s.log.Error().Err(err).Msg("load project")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return nil
	}
	u := currentUser(r)
	if !u.IsAdmin() && (p.Owner == nil || p.Owner.ID != u.ID) {
		writeError(w, http.StatusForbidden, "غير مسموح لك بتعديل هذا المشروع")
		return nil
	}
	return p
}

func (s *server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	current := s.ownedProject(w, r)
	if current == nil {
		return
	}
	p, msg := projectForm(r, *current)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	image, err := s.saveUpload(r, "image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}
	p.Image = image

	updated, err := s.store.UpdateProject(p)
	if err != nil {
		s.removeUpload(image)
		s.log.Error().Err(err).Msg("update project")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	if image != "" && current.Image != "" {
		s.removeUpload(current.Image)
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "تم تحديث المشروع بنجاح", "data": updated})
}

func (s *server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	p := s.ownedProject(w, r)
	if p == nil {
		return
	}
	if err := s.store.DeleteProject(p.ID); err != nil {
		s.log.Error().Err(err).Msg("delete project")
		writeError(w, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}
	s.removeUpload(p.Image)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "تم حذف المشروع بنجاح"})
}
