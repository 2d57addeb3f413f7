package response

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/casebook/internal/platform/apierr"
)

func serve(t *testing.T, setup func(r *gin.Engine), h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if setup != nil {
		setup(r)
	}
	r.GET("/", h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestRespondAPIErrorHidesInternalCause(t *testing.T) {
	rec := serve(t, nil, func(c *gin.Context) {
		RespondAPIError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got=%d", rec.Code)
	}
	if got, want := rec.Body.String(), `{"error":{"message":"internal server error","code":"internal_error"}}`; got != want {
		t.Fatalf("body: got=%s want=%s", got, want)
	}
}

func TestRespondAPIErrorNotFound(t *testing.T) {
	rec := serve(t, nil, func(c *gin.Context) {
		RespondAPIError(c, apierr.NotFound("case_not_found", errors.New("case not found")))
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got=%d", rec.Code)
	}
	if got, want := rec.Body.String(), `{"error":{"message":"case not found","code":"case_not_found"}}`; got != want {
		t.Fatalf("body: got=%s want=%s", got, want)
	}
}

func TestRendererJSONTagsView(t *testing.T) {
	rec := serve(t, nil, func(c *gin.Context) {
		NewRenderer(false).View(c, http.StatusOK, "home", nil)
	})
	if got, want := rec.Body.String(), `{"view":"home"}`; got != want {
		t.Fatalf("body: got=%s want=%s", got, want)
	}
}

func TestRendererHTML(t *testing.T) {
	tmpl := template.Must(template.New("home.html").Parse(`<h1>{{.greeting}}</h1>`))
	template.Must(tmpl.New("error.html").Parse(`{{.status}} {{.code}}: {{.message}}`))
	setup := func(r *gin.Engine) { r.SetHTMLTemplate(tmpl) }

	rec := serve(t, setup, func(c *gin.Context) {
		NewRenderer(true).View(c, http.StatusOK, "home", gin.H{"greeting": "cases"})
	})
	if got := rec.Body.String(); got != "<h1>cases</h1>" {
		t.Fatalf("body: got=%q", got)
	}

	rec = serve(t, setup, func(c *gin.Context) {
		NewRenderer(true).Error(c, apierr.NotFound("case_not_found", errors.New("case not found")))
	})
	if rec.Code != http.StatusNotFound || rec.Body.String() != "404 case_not_found: case not found" {
		t.Fatalf("error view: code=%d body=%q", rec.Code, rec.Body.String())
	}
}
