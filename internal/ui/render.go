package ui

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

const BasePath = "/app"

const (
	selectPath   = BasePath + "/select/%d"
	backPath     = BasePath + "/back"
	generatePath = BasePath + "/quiz/generate"
	submitPath   = BasePath + "/quiz/submit"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type menuView struct {
	Options    []Option
	SelectPath string
}

type quizView struct {
	QuizState
	Table        *Table
	SubmitPath   string
	GeneratePath string
}

// RenderPage writes the full document around the shell's current view.
func RenderPage(w io.Writer, s *Shell) error {
	var body bytes.Buffer
	if err := s.Render(&body); err != nil {
		return err
	}
	return templates.ExecuteTemplate(w, "page", template.HTML(body.String()))
}
