package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/mbolis/form-builder/app"
	"github.com/mbolis/form-builder/fill"
	"github.com/mbolis/form-builder/httpx"
	"github.com/mbolis/form-builder/log"
	"github.com/mbolis/form-builder/model"
	"github.com/mbolis/form-builder/results"
	"github.com/mbolis/form-builder/validate"
)

func ListResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId := r.URL.Query().Get("formId")

		responses, err := app.LoadResponses(r.Context(), formId)
		if err != nil {
			httpx.LogInternalError(w, "store.load_responses", err)
			return
		}

		render.JSON(w, r, responses)
	}
}

// SubmitResponse validates a submission against its form and appends
// it. Responses are immutable: there is no update counterpart.
func SubmitResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := model.FormResponse{}
		err := render.DecodeJSON(r.Body, &response)
		if err != nil {
			httpx.LogBadRequest(w, "request.parse_body", err)
			return
		}

		form, err := app.LoadForm(r.Context(), response.FormID)
		if err != nil {
			httpx.LogInternalError(w, "store.load_form", err)
			return
		}
		if form == nil {
			httpx.LogNotFound(w, "submit_response", response.FormID)
			return
		}

		validation := validate.Response(response, form)
		if !validation.IsValid {
			log.Debugf("response.validate: %d errors", len(validation.Errors))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, validation)
			return
		}

		if response.ID == "" {
			response.ID = uuid.NewString()
		}
		if response.SubmittedAt.IsZero() {
			response.SubmittedAt = time.Now()
		}

		err = app.SaveResponse(r.Context(), response)
		if err != nil {
			httpx.LogInternalError(w, "store.save_response", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": response.ID,
		})
	}
}

// GetFormResults aggregates every persisted response of a form into
// per-question stats.
func GetFormResults(app app.App) http.HandlerFunc {
	type questionResults struct {
		ID    string         `json:"id"`
		Code  string         `json:"code"`
		Title string         `json:"title"`
		Type  string         `json:"questionType"`
		Stats *results.Stats `json:"stats"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		formId := chi.URLParam(r, "id")

		form, err := app.LoadForm(r.Context(), formId)
		if err != nil {
			httpx.LogInternalError(w, "store.load_form", err)
			return
		}
		if form == nil {
			httpx.LogNotFound(w, "get_results", formId)
			return
		}

		responses, err := app.LoadResponses(r.Context(), formId)
		if err != nil {
			httpx.LogInternalError(w, "store.load_responses", err)
			return
		}

		questions := make([]questionResults, 0, len(form.Questions))
		for _, q := range form.Questions {
			questions = append(questions, questionResults{
				ID:    q.ID,
				Code:  q.Code,
				Title: q.Title,
				Type:  string(q.QuestionType),
				Stats: results.ForQuestion(form, q.ID, responses),
			})
		}

		render.JSON(w, r, map[string]any{
			"responses": len(responses),
			"questions": questions,
		})
	}
}

// CheckVisibility evaluates the conditional rules for an in-progress
// answer set: which questions should be rendered right now, and how
// far along the respondent is.
func CheckVisibility(app app.App) http.HandlerFunc {
	type visibilityRequest struct {
		Answers []model.Answer `json:"answers"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		formId := chi.URLParam(r, "id")

		body := visibilityRequest{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogBadRequest(w, "request.parse_body", err)
			return
		}

		form, err := app.LoadForm(r.Context(), formId)
		if err != nil {
			httpx.LogInternalError(w, "store.load_form", err)
			return
		}
		if form == nil {
			httpx.LogNotFound(w, "check_visibility", formId)
			return
		}

		session := fill.NewSession(form)
		for _, a := range body.Answers {
			session.Record(a.QuestionID, a.Value)
		}

		visible := []string{}
		for _, q := range session.VisibleQuestions() {
			visible = append(visible, q.ID)
		}

		render.JSON(w, r, map[string]any{
			"visible":  visible,
			"progress": session.Progress(),
		})
	}
}
