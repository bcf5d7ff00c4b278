package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testComponent struct {
	body string
}

func (c testComponent) Render(_ context.Context, w io.Writer) error {
	_, err := w.Write([]byte(c.body))
	return err
}

func htmxRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set(RequestHeaderKey, "true")
	return r
}

func TestIsHTMXRequest(t *testing.T) {
	t.Run("missing_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(nil); got {
			t.Fatalf("IsHTMXRequest(nil) = true, want false")
		}
	})

	t.Run("true_request_is_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(htmxRequest(http.MethodGet, "/")); !got {
			t.Fatalf("IsHTMXRequest(request) = false, want true")
		}
	})

	t.Run("plain_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(httptest.NewRequest(http.MethodGet, "/", nil)); got {
			t.Fatalf("IsHTMXRequest(request) = true, want false")
		}
	})
}

func TestTitleTag(t *testing.T) {
	t.Parallel()
	got := TitleTag(`Recipients <Picker>`)
	want := "<title>Recipients &lt;Picker&gt;</title>"
	if got != want {
		t.Fatalf("TitleTag(...) = %q, want %q", got, want)
	}
	if TitleTag("  ") != "" {
		t.Fatal("blank title should render nothing")
	}
}

func TestRenderPageForNonHTMXUsesFullRender(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	err := RenderPage(w, httptest.NewRequest(http.MethodGet, "/", nil), testComponent{body: "<div>fragment</div>"}, testComponent{body: "<html>full</html>"})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if got := w.Body.String(); got != "<html>full</html>" {
		t.Fatalf("rendered body = %q, want full page body", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestRenderPageForHTMXUsesFragment(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	if err := RenderPage(w, htmxRequest(http.MethodGet, "/"), testComponent{body: "<div>fragment</div>"}, testComponent{body: "<html>full</html>"}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if got := w.Body.String(); got != "<div>fragment</div>" {
		t.Fatalf("rendered body = %q, want fragment", got)
	}
}

func TestRenderPageFallsBackWhenComponentMissing(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	if err := RenderPage(w, htmxRequest(http.MethodGet, "/"), nil, testComponent{body: "full"}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if w.Body.String() != "full" {
		t.Fatalf("rendered body = %q, want full", w.Body.String())
	}

	w = httptest.NewRecorder()
	if err := RenderPage(w, httptest.NewRequest(http.MethodGet, "/", nil), nil, nil); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
}

func TestRespondAfterMutation(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	if err := RespondAfterMutation(w, httptest.NewRequest(http.MethodPost, "/recipients/clear", nil), testComponent{body: "widget"}, "/"); err != nil {
		t.Fatalf("RespondAfterMutation() error = %v", err)
	}
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("plain post: status = %d location = %q", w.Code, w.Header().Get("Location"))
	}

	w = httptest.NewRecorder()
	if err := RespondAfterMutation(w, htmxRequest(http.MethodPost, "/recipients/clear"), testComponent{body: "widget"}, "/"); err != nil {
		t.Fatalf("RespondAfterMutation() error = %v", err)
	}
	if w.Code != http.StatusOK || w.Body.String() != "widget" {
		t.Fatalf("htmx post: status = %d body = %q", w.Code, w.Body.String())
	}
}
