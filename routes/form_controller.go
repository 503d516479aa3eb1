package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/mbolis/form-builder/app"
	"github.com/mbolis/form-builder/httpx"
	"github.com/mbolis/form-builder/log"
	"github.com/mbolis/form-builder/model"
	"github.com/mbolis/form-builder/validate"
)

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms, err := app.LoadForms(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "store.load_forms", err)
			return
		}

		render.JSON(w, r, forms)
	}
}

// SaveForm upserts a whole form definition: an existing id gets
// replaced in full, a missing id gets generated along with the
// creation timestamp. Invalid definitions come back as 422 with
// every violation listed.
func SaveForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := model.Form{}
		err := render.DecodeJSON(r.Body, &form)
		if err != nil {
			httpx.LogBadRequest(w, "request.parse_body", err)
			return
		}

		created := false
		if form.ID == "" {
			form.ID = uuid.NewString()
			created = true
		}
		if form.CreatedAt.IsZero() {
			form.CreatedAt = time.Now()
		}

		validation := validate.Form(form)
		if !validation.IsValid {
			log.Debugf("form.validate: %d errors", len(validation.Errors))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, validation)
			return
		}

		err = app.Store.SaveForm(r.Context(), form)
		if err != nil {
			httpx.LogInternalError(w, "store.save_form", err)
			return
		}

		if created {
			render.Status(r, http.StatusCreated)
		}
		render.JSON(w, r, form)
	}
}

func GetFormById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId := chi.URLParam(r, "id")

		form, err := app.LoadForm(r.Context(), formId)
		if err != nil {
			httpx.LogInternalError(w, "store.load_form", err)
			return
		}
		if form == nil {
			httpx.LogNotFound(w, "get_form", formId)
			return
		}

		render.JSON(w, r, form)
	}
}

// DeleteForm removes a form and every response submitted to it, as
// one administrative action.
func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId := chi.URLParam(r, "id")

		form, err := app.LoadForm(r.Context(), formId)
		if err != nil {
			httpx.LogInternalError(w, "store.load_form", err)
			return
		}
		if form == nil {
			httpx.LogNotFound(w, "delete_form", formId)
			return
		}

		err = app.Store.DeleteForm(r.Context(), formId)
		if err != nil {
			httpx.LogInternalError(w, "store.delete_form", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
