package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"sync"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/vadimbarashkov/tinyurl/internal/entity"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// Form names accepted by the dashboard.
const (
	formCreate = "create"
	formQuery  = "query"
	formDelete = "delete"
)

const duplicateShortCodeMsg = "duplicate custom short code, retry."

type createForm struct {
	OriginalURL string `json:"long_url" validate:"required"`
	CustomCode  string `json:"custom_code"`
}

type dashboardView struct {
	URLs       []entity.URL
	Spotlight  entity.Lookup
	ShortenErr string
	CSRFField  template.HTML
}

// dashboardHandler serves the HTML page. It owns the spotlight, the result of
// the last short code query, and the error of the last create attempt.
type dashboardHandler struct {
	useCase  urlUseCase
	validate *validator.Validate

	mu         sync.Mutex
	spotlight  entity.Lookup
	shortenErr string
}

func newDashboardHandler(useCase urlUseCase, validate *validator.Validate) *dashboardHandler {
	return &dashboardHandler{
		useCase:   useCase,
		validate:  validate,
		spotlight: entity.Unqueried(),
	}
}

func (h *dashboardHandler) show(w http.ResponseWriter, r *http.Request) {
	urls, err := h.useCase.ListURLs(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.mu.Lock()
	spotlight, shortenErr := h.spotlight, h.shortenErr
	h.mu.Unlock()

	spotlight, err = h.lookup(r.Context(), spotlight)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	view := dashboardView{
		URLs:       urls,
		Spotlight:  spotlight,
		ShortenErr: shortenErr,
		CSRFField:  csrf.TemplateField(r),
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		h.serverError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.HTML(w, r, buf.String())
}

// lookup re-reads a queried short code without counting a visit, so the page
// reflects deletions and clicks that happened since the query.
func (h *dashboardHandler) lookup(ctx context.Context, l entity.Lookup) (entity.Lookup, error) {
	if l.State == entity.LookupUnqueried {
		return l, nil
	}

	url, err := h.useCase.GetURLStats(ctx, l.ShortCode)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			return entity.NotFound(l.ShortCode), nil
		}
		return entity.Lookup{}, err
	}

	return entity.Found(url), nil
}

func (h *dashboardHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.PlainText(w, r, "invalid form")
		return
	}

	var err error

	switch r.PostFormValue("form_name") {
	case formCreate:
		err = h.create(r)
	case formQuery:
		err = h.query(r)
	case formDelete:
		err = h.useCase.DeactivateURL(r.Context(), r.PostFormValue("short_code"))
	default:
		render.Status(r, http.StatusBadRequest)
		render.PlainText(w, r, "illegal input")
		return
	}

	if err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *dashboardHandler) create(r *http.Request) error {
	form := createForm{
		OriginalURL: r.PostFormValue("long_url"),
		CustomCode:  r.PostFormValue("custom_code"),
	}

	// A create without a long url is ignored.
	if err := h.validate.Struct(form); err != nil {
		return nil
	}

	_, err := h.useCase.ShortenURL(r.Context(), form.OriginalURL, form.CustomCode)
	if err != nil && !errors.Is(err, entity.ErrShortCodeExists) {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		h.shortenErr = duplicateShortCodeMsg
	} else {
		h.shortenErr = ""
	}

	return nil
}

func (h *dashboardHandler) query(r *http.Request) error {
	shortCode := r.PostFormValue("short_code")

	lookup := entity.NotFound(shortCode)

	url, err := h.useCase.ResolveShortCode(r.Context(), shortCode)
	if err != nil {
		if !errors.Is(err, entity.ErrURLNotFound) {
			return err
		}
	} else {
		lookup = entity.Found(url)
	}

	h.mu.Lock()
	h.spotlight = lookup
	h.mu.Unlock()

	return nil
}

func (h *dashboardHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logError(r, err)

	render.Status(r, http.StatusInternalServerError)
	render.PlainText(w, r, http.StatusText(http.StatusInternalServerError))
}
