package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/domain/project"
	"portfolio/internal/i18n"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

var testUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// newTestApp mounts routes behind the production error and preferences
// middleware. A non-nil user is put in Locals as if authenticated.
func newTestApp(user *uuid.UUID, mount func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	app.Use(middleware.NewPreferencesMiddleware(false).Middleware())
	if user != nil {
		id := *user
		app.Use(func(c fiber.Ctx) error {
			c.Locals(middleware.CtxUserIDKey, id)
			return c.Next()
		})
	}
	mount(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, response.SemanticResponse) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	var out response.SemanticResponse
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("%s %s: unmarshal %q: %v", method, path, b, err)
	}
	return res, out
}

func dataMap(t *testing.T, r response.SemanticResponse) map[string]any {
	t.Helper()
	m, ok := r.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %#v", r.Data)
	}
	return m
}

type fakeContent struct {
	detailErr error
	lastLang  i18n.Language
}

func (f *fakeContent) GetProfile(_ context.Context, lang i18n.Language) usecase.ProfileView {
	f.lastLang = lang
	return usecase.ProfileView{Name: "Jane"}
}

func (f *fakeContent) ListProjects(_ context.Context, lang i18n.Language) usecase.ProjectList {
	f.lastLang = lang
	return usecase.ProjectList{Items: []usecase.ProjectCard{}, Empty: true}
}

func (f *fakeContent) GetProject(_ context.Context, _ string, lang i18n.Language) (usecase.ProjectDetail, error) {
	f.lastLang = lang
	if f.detailErr != nil {
		return usecase.ProjectDetail{}, f.detailErr
	}
	return usecase.ProjectDetail{Title: "Site"}, nil
}

func (f *fakeContent) ListSkills(_ context.Context, lang i18n.Language) usecase.SkillsView {
	f.lastLang = lang
	return usecase.SkillsView{}
}

func TestPublicHandler_MissingProjectIsTerminal404(t *testing.T) {
	uc := &fakeContent{detailErr: usecase.ErrNotFound}
	app := newTestApp(nil, NewPublicHandler(uc, nil).RegisterRoutes)

	res, body := do(t, app, http.MethodGet, "/projects/abc?lang=fr", "")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	if body.Message != "Projet introuvable" {
		t.Fatalf("expected French message, got %q", body.Message)
	}
	data := dataMap(t, body)
	if data["action"] != "home" || data["href"] != "/" {
		t.Fatalf("unexpected recovery action %#v", data)
	}
}

func TestPublicHandler_UsesResolvedLanguage(t *testing.T) {
	uc := &fakeContent{}
	app := newTestApp(nil, NewPublicHandler(uc, nil).RegisterRoutes)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.5")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if uc.lastLang != i18n.French {
		t.Fatalf("expected fr, got %q", uc.lastLang)
	}
}

type fakeProjectAdmin struct {
	createErr error
	deleteErr error
	visible   bool
	calls     int
}

func (f *fakeProjectAdmin) List(context.Context, uuid.UUID) ([]project.Project, error) {
	return []project.Project{{ID: uuid.New(), Title: "A"}}, nil
}

func (f *fakeProjectAdmin) Get(context.Context, uuid.UUID, uuid.UUID) (project.Draft, error) {
	return project.Draft{Title: "A"}, nil
}

func (f *fakeProjectAdmin) Create(_ context.Context, userID uuid.UUID, d project.Draft) (project.Project, error) {
	f.calls++
	if f.createErr != nil {
		return project.Project{}, f.createErr
	}
	p := d.Payload()
	p.ID = uuid.New()
	p.UserID = userID
	return p, nil
}

func (f *fakeProjectAdmin) Update(_ context.Context, _ uuid.UUID, id uuid.UUID, d project.Draft) (project.Project, error) {
	f.calls++
	p := d.Payload()
	p.ID = id
	return p, nil
}

func (f *fakeProjectAdmin) Delete(_ context.Context, _ uuid.UUID, _ uuid.UUID, confirm bool) error {
	if !confirm {
		return usecase.ErrConfirmationRequired
	}
	f.calls++
	return f.deleteErr
}

func (f *fakeProjectAdmin) ToggleVisibility(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	f.visible = !f.visible
	return f.visible, nil
}

func (f *fakeProjectAdmin) UploadImages(_ context.Context, _ uuid.UUID, files []usecase.FileInput) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, fi := range files {
		out = append(out, "https://cdn.example/"+fi.Filename)
	}
	return out, nil
}

func projectApp(uc usecase.ProjectAdminUsecase) *fiber.App {
	id := testUserID
	return newTestApp(&id, func(r fiber.Router) {
		NewProjectHandler(uc).RegisterRoutes(r.Group("/admin/projects"))
	})
}

func TestProjectHandler_CreateReportsSuccessState(t *testing.T) {
	uc := &fakeProjectAdmin{}
	res, body := do(t, projectApp(uc), http.MethodPost, "/admin/projects", `{"title":" Site ","description":"d","technologies":["Go",""]}`)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	data := dataMap(t, body)
	if data["form_state"] != string(usecase.FormSuccess) {
		t.Fatalf("expected success state, got %v", data["form_state"])
	}
	p, _ := data["project"].(map[string]any)
	if p["title"] != "Site" {
		t.Fatalf("expected trimmed title, got %v", p["title"])
	}
}

func TestProjectHandler_ValidationIs422AndStaysEditing(t *testing.T) {
	uc := &fakeProjectAdmin{createErr: &usecase.ValidationError{Message: "Title and description are required", Fields: []string{"title"}}}
	res, body := do(t, projectApp(uc), http.MethodPost, "/admin/projects", `{"title":""}`)
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.StatusCode)
	}
	if body.Message != "Title and description are required" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if dataMap(t, body)["form_state"] != string(usecase.FormEditing) {
		t.Fatalf("expected editing state")
	}
}

func TestProjectHandler_WriteFailureIsGeneric500(t *testing.T) {
	uc := &fakeProjectAdmin{createErr: usecase.ErrInternal}
	res, body := do(t, projectApp(uc), http.MethodPost, "/admin/projects", `{"title":"a","description":"b"}`)
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	if body.Message != response.MessageInternalServerError {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
	if dataMap(t, body)["form_state"] != string(usecase.FormFailure) {
		t.Fatalf("expected failure state")
	}
}

func TestProjectHandler_DeleteNeedsConfirm(t *testing.T) {
	uc := &fakeProjectAdmin{}
	app := projectApp(uc)
	id := uuid.New().String()

	res, _ := do(t, app, http.MethodDelete, "/admin/projects/"+id, "")
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
	if uc.calls != 0 {
		t.Fatalf("expected no delete without confirm")
	}

	res, _ = do(t, app, http.MethodDelete, "/admin/projects/"+id+"?confirm=true", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if uc.calls != 1 {
		t.Fatalf("expected one delete, got %d", uc.calls)
	}
}

func TestProjectHandler_ToggleVisibilityReturnsNewValue(t *testing.T) {
	uc := &fakeProjectAdmin{visible: true}
	res, body := do(t, projectApp(uc), http.MethodPatch, "/admin/projects/"+uuid.New().String()+"/visibility", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if dataMap(t, body)["is_visible"] != false {
		t.Fatalf("expected is_visible=false")
	}
}

func TestProjectHandler_BadIDIs404(t *testing.T) {
	res, _ := do(t, projectApp(&fakeProjectAdmin{}), http.MethodGet, "/admin/projects/not-a-uuid", "")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestProjectHandler_RequiresUser(t *testing.T) {
	app := newTestApp(nil, func(r fiber.Router) {
		NewProjectHandler(&fakeProjectAdmin{}).RegisterRoutes(r.Group("/admin/projects"))
	})
	res, body := do(t, app, http.MethodGet, "/admin/projects", "")
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	if dataMap(t, body)["redirect"] != "/admin" {
		t.Fatalf("expected redirect data")
	}
}

type fakeContact struct {
	err     error
	lastKey string
}

func (f *fakeContact) Send(_ context.Context, key string, _ usecase.ContactInput) error {
	f.lastKey = key
	return f.err
}

func TestContactHandler_Outcomes(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"success", nil, http.StatusOK, "Message envoyé avec succès !"},
		{"validation", &usecase.ValidationError{Message: "x", Fields: []string{"email"}}, http.StatusUnprocessableEntity, "Erreur lors de l'envoi. Veuillez réessayer."},
		{"throttled", usecase.ErrRateLimited, http.StatusTooManyRequests, "Merci de patienter avant d'envoyer un autre message."},
		{"failure", usecase.ErrInternal, http.StatusInternalServerError, "Erreur lors de l'envoi. Veuillez réessayer."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeContact{err: tc.err}
			app := newTestApp(nil, NewContactHandler(uc, nil).RegisterRoutes)
			res, body := do(t, app, http.MethodPost, "/contact?lang=fr", `{"name":"a","email":"a@b.c","message":"hi"}`)
			if res.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, res.StatusCode)
			}
			if body.Message != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, body.Message)
			}
			if uc.lastKey == "" {
				t.Fatalf("expected sender key")
			}
		})
	}
}

func TestPreferencesHandler_ToggleLanguagePersistsCookie(t *testing.T) {
	prefs := middleware.NewPreferencesMiddleware(false)
	app := newTestApp(nil, NewPreferencesHandler(nil, prefs).RegisterRoutes)

	req := httptest.NewRequest(http.MethodPost, "/preferences/toggle-language", nil)
	req.AddCookie(&http.Cookie{Name: middleware.LanguageCookie, Value: "en"})
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var found bool
	for _, c := range res.Cookies() {
		if c.Name == middleware.LanguageCookie && c.Value == "fr" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lang=fr cookie, got %v", res.Cookies())
	}
}

func TestPreferencesHandler_UnknownLanguageTable(t *testing.T) {
	app := newTestApp(nil, NewPreferencesHandler(nil, nil).RegisterRoutes)
	res, _ := do(t, app, http.MethodGet, "/i18n/de", "")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
