package ui_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/netconv/internal/bintodec"
	"github.com/saulo-duarte/netconv/internal/client"
	"github.com/saulo-duarte/netconv/internal/session"
	"github.com/saulo-duarte/netconv/internal/ui"
)

type fixedGenerator struct{ n int }

func (g fixedGenerator) Next() int { return g.n }

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	svc := bintodec.NewService(bintodec.NewNoopRepository(), fixedGenerator{n: 10})
	api := httptest.NewServer(bintodec.Routes(bintodec.NewHandler(svc)))
	t.Cleanup(api.Close)

	tokens, err := session.NewManager("segredo-de-teste", time.Hour)
	if err != nil {
		t.Fatalf("NewManager falhou: %v", err)
	}
	c := ui.NewContainer(client.New(api.URL, time.Second), tokens)

	r := chi.NewRouter()
	r.Mount(ui.BasePath, ui.Routes(c.Handler))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, _ := cookiejar.New(nil)
	return srv, &http.Client{Jar: jar}
}

func readBody(t *testing.T) func(*http.Response, error) string {
	return func(resp *http.Response, err error) string {
		t.Helper()
		return checkBody(t, resp, err)
	}
}

func checkBody(t *testing.T, resp *http.Response, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("Requisição falhou: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status %d, esperado %d", resp.StatusCode, http.StatusOK)
	}
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}

func TestWebFlow(t *testing.T) {
	srv, hc := newTestServer(t)
	base := srv.URL + ui.BasePath
	read := readBody(t)

	html := read(hc.Get(base+"/"))
	if !strings.Contains(html, "<h2>Network Conversion Tools</h2>") {
		t.Fatalf("Menu ausente:\n%s", html)
	}

	html = read(hc.Post(base+"/select/1", "application/x-www-form-urlencoded", nil))
	for _, want := range []string{"Binary to Decimal Conversion", "Binary Number: 00001010", "Back to Main Menu"} {
		if !strings.Contains(html, want) {
			t.Errorf("Página do quiz não contém %q", want)
		}
	}

	html = read(hc.PostForm(base+"/quiz/submit", url.Values{"guess": {"10"}}))
	if !strings.Contains(html, "Correct! Well done!") {
		t.Errorf("Feedback de acerto ausente:\n%s", html)
	}

	html = read(hc.PostForm(base+"/quiz/submit", url.Values{"guess": {"5"}}))
	if !strings.Contains(html, "Incorrect. The correct decimal is 10") {
		t.Errorf("Feedback de erro ausente:\n%s", html)
	}

	html = read(hc.Post(base+"/quiz/generate", "application/x-www-form-urlencoded", nil))
	if strings.Contains(html, "Incorrect.") || strings.Contains(html, `value="5"`) {
		t.Errorf("Novo problema deveria limpar palpite e feedback:\n%s", html)
	}

	html = read(hc.Post(base+"/back", "application/x-www-form-urlencoded", nil))
	if !strings.Contains(html, "<h2>Network Conversion Tools</h2>") || strings.Contains(html, "Back to Main Menu") {
		t.Errorf("Back deveria voltar ao menu:\n%s", html)
	}
}

func TestWebSessionsAreIsolated(t *testing.T) {
	srv, first := newTestServer(t)
	base := srv.URL + ui.BasePath
	read := readBody(t)

	read(first.Post(base+"/select/1", "application/x-www-form-urlencoded", nil))

	jar, _ := cookiejar.New(nil)
	second := &http.Client{Jar: jar}
	html := read(second.Get(base+"/"))
	if strings.Contains(html, "Binary to Decimal Conversion") {
		t.Error("Segunda sessão não deveria ver o quiz da primeira")
	}
}

func TestWebSelectUnknown(t *testing.T) {
	srv, hc := newTestServer(t)

	resp, err := hc.Post(srv.URL+ui.BasePath+"/select/7", "application/x-www-form-urlencoded", nil)
	if err != nil {
		t.Fatalf("Requisição falhou: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Status %d, esperado %d", resp.StatusCode, http.StatusNotFound)
	}
}

type failingTokens struct{}

func (failingTokens) Issue(string) (string, error) { return "", errors.New("signer indisponível") }
func (failingTokens) Parse(string) (string, error) { return "", session.ErrInvalidToken }
func (failingTokens) TTL() time.Duration           { return time.Hour }

func TestWebIssueFailureKeepsNoSession(t *testing.T) {
	api := &fakeAPI{
		fetch: sequence(10),
		check: grading,
	}
	sessions := session.NewStore(ui.NewShellFactory(api), time.Hour, nil)
	h := ui.NewHandler(sessions, failingTokens{})

	r := chi.NewRouter()
	r.Mount(ui.BasePath, ui.Routes(h))

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, ui.BasePath+"/", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("Status %d, esperado %d", rr.Code, http.StatusOK)
		}
		if c := rr.Header().Get("Set-Cookie"); c != "" {
			t.Errorf("Nenhum cookie deveria ser emitido, recebido %q", c)
		}
	}

	if sessions.Len() != 0 {
		t.Errorf("Sessões órfãs registradas: %d", sessions.Len())
	}
}
