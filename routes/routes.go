package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mbolis/form-builder/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// CRUD forms
	api.Get("/forms", ListForms(app))
	api.Post("/forms", SaveForm(app))
	api.Get("/forms/{id}", GetFormById(app))
	api.Delete("/forms/{id}", DeleteForm(app))

	api.Get("/forms/{id}/results", GetFormResults(app))
	api.Post("/forms/{id}/visibility", CheckVisibility(app))

	api.Get("/responses", ListResponses(app))
	api.Post("/responses", SubmitResponse(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
