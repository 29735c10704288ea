package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"

	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

const (
	PageHome          = "pages/home"
	PageVenues        = "pages/venues"
	PageSearchVenues  = "pages/search_venues"
	PageShowVenue     = "pages/show_venue"
	PageArtists       = "pages/artists"
	PageSearchArtists = "pages/search_artists"
	PageShowArtist    = "pages/show_artist"
	PageShows         = "pages/shows"
	PageNewVenue      = "forms/new_venue"
	PageEditVenue     = "forms/edit_venue"
	PageNewArtist     = "forms/new_artist"
	PageEditArtist    = "forms/edit_artist"
	PageNewShow       = "forms/new_show"
	PageNotFound      = "errors/404"
	PageServerError   = "errors/500"
)

var pageNames = []string{
	PageHome, PageVenues, PageSearchVenues, PageShowVenue,
	PageArtists, PageSearchArtists, PageShowArtist, PageShows,
	PageNewVenue, PageEditVenue, PageNewArtist, PageEditArtist, PageNewShow,
	PageNotFound, PageServerError,
}

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

type Flash struct {
	Category string
	Message  string
}

// Page is the data every template receives.
type Page struct {
	Flashes []Flash
	Errors  map[string]string
	Form    any
	Data    any
}

func (p *Page) AddFlash(category, message string) *Page {
	p.Flashes = append(p.Flashes, Flash{Category: category, Message: message})
	return p
}

// SortedErrors returns the field errors ordered by field name.
func (p *Page) SortedErrors() []string {
	fields := make([]string, 0, len(p.Errors))
	for field := range p.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	msgs := make([]string, len(fields))
	for i, field := range fields {
		msgs[i] = field + ": " + p.Errors[field]
	}
	return msgs
}

var funcs = template.FuncMap{
	"datetime": utils.FormatDateTime,
	"genres":   func() []string { return utils.Genres },
	"states":   func() []string { return utils.States },
	"contains": func(list []string, s string) bool { return slices.Contains(list, s) },
	"join":     strings.Join,
}

type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

// NewRenderer parses every page once, each with the shared layout and
// partials, so a broken template fails at startup.
func NewRenderer(log *zap.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layouts/*.html",
			"templates/partials/*.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
		log:   log.With(zap.String("component", "view")),
	}, nil
}

// Render executes page into a buffer first so a template error never leaves
// a half-written page behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *Page) {
	if data == nil {
		data = &Page{}
	}

	tmpl, ok := r.pages[page]
	if !ok {
		r.log.Error("Unknown template", zap.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "main", data); err != nil {
		r.log.Error("Failed to render template",
			zap.Error(err),
			zap.String("page", page),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.log.Warn("Failed to write response", zap.Error(err), zap.String("page", page))
	}
}

func (r *Renderer) NotFound(w http.ResponseWriter, _ *http.Request) {
	r.Render(w, http.StatusNotFound, PageNotFound, nil)
}

func (r *Renderer) ServerError(w http.ResponseWriter, _ *http.Request) {
	r.Render(w, http.StatusInternalServerError, PageServerError, nil)
}
