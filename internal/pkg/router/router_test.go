package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claroapp/claro-api/internal/pkg/goerror"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
	"github.com/claroapp/claro-api/internal/pkg/uid"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	return NewRouter(Config{
		UUID: uid.NewUUID(),
		JWT:  fakeCodec{},
		Policy: NewPolicy(
			Rule{Pattern: "/", Access: AccessPublic},
		),
		Instrument: instrument.NewNoop(),
	})
}

func doRequest(ro *Router, method, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)
	return rec
}

func TestRouterJSONResponse(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/thing", func(*Request) (any, error) {
		return map[string]string{"url": "https://example.com"}, nil
	})

	rec := doRequest(ro, http.MethodGet, "/thing", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"url":"https://example.com"}`, rec.Body.String())
}

func TestRouterTextResponse(t *testing.T) {
	ro := newTestRouter(t)
	ro.POST("/token", func(*Request) (any, error) {
		return Text("abc.def.ghi"), nil
	})

	rec := doRequest(ro, http.MethodPost, "/token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "abc.def.ghi", rec.Body.String())
}

func TestRouterNilResponse(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/empty", func(*Request) (any, error) {
		return nil, nil
	})

	rec := doRequest(ro, http.MethodGet, "/empty", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouterBusinessError(t *testing.T) {
	ro := newTestRouter(t)
	ro.POST("/login", func(*Request) (any, error) {
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	})

	rec := doRequest(ro, http.MethodPost, "/login", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"invalid email or password"}`, rec.Body.String())
}

func TestRouterUnknownError(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/boom", func(*Request) (any, error) {
		return nil, errors.New("db gone")
	})

	rec := doRequest(ro, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestRouterPanicRecovery(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/panic", func(*Request) (any, error) {
		panic("boom")
	})

	rec := doRequest(ro, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestRouterNotFound(t *testing.T) {
	ro := newTestRouter(t)

	rec := doRequest(ro, http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"endpoint not found"}`, rec.Body.String())
}

func TestRouterMethodNotAllowed(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/only-get", func(*Request) (any, error) {
		return Text("ok"), nil
	})

	rec := doRequest(ro, http.MethodPost, "/only-get", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterCorrelationIDEchoed(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/cid", func(*Request) (any, error) {
		return Text("ok"), nil
	})

	req := httptest.NewRequest(http.MethodGet, "/cid", nil)
	req.Header.Set(HeaderCorrelationID, "abc-123")
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(HeaderCorrelationID))
}

func TestRequestDecodeBody(t *testing.T) {
	ro := newTestRouter(t)

	type payload struct {
		Email string `json:"email"`
	}

	ro.POST("/decode", func(r *Request) (any, error) {
		var p payload
		if err := r.DecodeBody(&p); err != nil {
			return nil, err
		}
		return map[string]string{"email": p.Email}, nil
	})

	t.Run("valid body", func(t *testing.T) {
		rec := doRequest(ro, http.MethodPost, "/decode", `{"email":"a@b.com"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"a@b.com"}`, rec.Body.String())
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		rec := doRequest(ro, http.MethodPost, "/decode", `{"email":"a@b.com","extra":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		rec := doRequest(ro, http.MethodPost, "/decode", `not-json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("trailing content rejected", func(t *testing.T) {
		rec := doRequest(ro, http.MethodPost, "/decode", `{"email":"a@b.com"}{"email":"c@d.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
