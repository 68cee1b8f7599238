package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

// PageData is everything the dashboard page needs for one render.
type PageData struct {
	AllUsers         []models.User
	TopUsers         []models.User
	TotalUniqueCards int64
	SelectedUserID   string
	SelectedUserName string
	SortType         string
	Reverse          bool
	SortOptions      []string
	Cards            []models.CardItem
	Logs             []string
}

// Renderer holds the parsed dashboard template.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("dashboard").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for data to w. The template executes into a
// buffer first so a template fault never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
