package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/claraboia/jcreader/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

const testCSRFToken = "csrf-cookie-token"

func homePage(flag string) string {
	body := "<body>"
	if flag != "" {
		body = fmt.Sprintf(`<body data-user-authenticated="%s">`, flag)
	}
	return `<!DOCTYPE html><html><head><title>JC</title></head>` + body +
		`<form><input type="hidden" name="csrfmiddlewaretoken" value="form-token"></form></body></html>`
}

func newTestSite(t *testing.T, persister CookiePersister, routes func(r *mux.Router)) *Client {
	t.Helper()

	r := mux.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)

	client, err := NewClient(srv.URL+"/", persister)
	require.NoError(t, err)

	t.Cleanup(func() {
		client.httpClient.CloseIdleConnections()
		srv.Close()
	})
	return client
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func serveHome(flag string) func(r *mux.Router) {
	return func(r *mux.Router) {
		r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: csrfCookieName, Value: testCSRFToken, Path: "/"})
			_, _ = io.WriteString(w, homePage(flag))
		}).Methods(http.MethodGet)
	}
}

type fakePersister struct {
	mu      sync.Mutex
	cookies map[string]*http.Cookie
}

func newFakePersister() *fakePersister {
	return &fakePersister{cookies: make(map[string]*http.Cookie)}
}

func (p *fakePersister) SetCookie(_ context.Context, c *http.Cookie) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c.MaxAge < 0 {
		delete(p.cookies, c.Name)
		return nil
	}
	p.cookies[c.Name] = c
	return nil
}

func (p *fakePersister) ListCookies(_ context.Context) ([]*http.Cookie, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*http.Cookie, 0, len(p.cookies))
	for _, c := range p.cookies {
		out = append(out, c)
	}
	return out, nil
}

func TestNewClient_RejectsNonHTTPURL(t *testing.T) {
	_, err := NewClient("ftp://example.com", nil)
	require.Error(t, err)
}

func TestClient_FetchSession(t *testing.T) {
	cases := []struct {
		name string
		flag string
		want bool
	}{
		{name: "authenticated", flag: "true", want: true},
		{name: "anonymous", flag: "false", want: false},
		{name: "flag_absent", flag: "", want: false},
		{name: "not_exactly_true", flag: "True", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestSite(t, nil, serveHome(tc.flag))

			session, err := client.FetchSession(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, session.Authenticated)
			assert.Equal(t, testCSRFToken, client.csrfToken())
		})
	}
}

func TestClient_FetchSession_ServerError(t *testing.T) {
	client := newTestSite(t, nil, func(r *mux.Router) {
		r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
	})

	_, err := client.FetchSession(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestClient_FetchPreferences(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		want    []string
		wantErr error
	}{
		{
			name:   "returns_categories",
			status: http.StatusOK,
			body:   `{"categorias": ["esportes", "cultura"]}`,
			want:   []string{"esportes", "cultura"},
		},
		{
			name:   "empty_list_is_a_successful_read",
			status: http.StatusOK,
			body:   `{"categorias": []}`,
			want:   []string{},
		},
		{
			name:    "missing_categorias",
			status:  http.StatusOK,
			body:    `{"success": true}`,
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "server_error",
			status:  http.StatusInternalServerError,
			body:    `{"error": "boom"}`,
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "login_redirect_page",
			status:  http.StatusOK,
			body:    `<html>login</html>`,
			wantErr: ErrUnexpectedResponse,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestSite(t, nil, func(r *mux.Router) {
				r.HandleFunc(preferencesPath, func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
					_, _ = io.WriteString(w, tc.body)
				}).Methods(http.MethodGet)
			})

			got, err := client.FetchPreferences(context.Background())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClient_SetPreferences(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		resp    any
		wantErr error
	}{
		{name: "success", status: http.StatusOK, resp: map[string]any{"success": true}},
		{name: "success_field_absent", status: http.StatusOK, resp: map[string]any{"ok": 1}},
		{
			name:    "rejected",
			status:  http.StatusOK,
			resp:    map[string]any{"success": false, "message": "categoria inválida"},
			wantErr: ErrServerRejected,
		},
		{
			name:    "csrf_failure",
			status:  http.StatusForbidden,
			resp:    map[string]any{"detail": "CSRF"},
			wantErr: ErrUnexpectedResponse,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				gotBody   preferencesBody
				gotHeader http.Header
			)
			client := newTestSite(t, nil, func(r *mux.Router) {
				serveHome("true")(r)
				r.HandleFunc(preferencesPath, func(w http.ResponseWriter, r *http.Request) {
					gotHeader = r.Header.Clone()
					_ = json.NewDecoder(r.Body).Decode(&gotBody)
					writeJSON(w, tc.status, tc.resp)
				}).Methods(http.MethodPost)
			})

			ctx := context.Background()
			_, err := client.FetchSession(ctx)
			require.NoError(t, err)

			err = client.SetPreferences(ctx, []string{"mundo", "economia"})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, []string{"mundo", "economia"}, gotBody.Categorias)
			assert.Equal(t, testCSRFToken, gotHeader.Get(csrfHeader))
			assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
			assert.NotEmpty(t, gotHeader.Get("Referer"))
		})
	}
}

func TestClient_SetPreferences_NilSendsEmptyList(t *testing.T) {
	var raw map[string]json.RawMessage
	client := newTestSite(t, nil, func(r *mux.Router) {
		r.HandleFunc(preferencesPath, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&raw)
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		}).Methods(http.MethodPost)
	})

	require.NoError(t, client.SetPreferences(context.Background(), nil))
	assert.JSONEq(t, `[]`, string(raw["categorias"]))
}

func TestClient_LoginPersistsSession(t *testing.T) {
	persister := newFakePersister()

	routes := func(r *mux.Router) {
		r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			flag := "false"
			if c, err := r.Cookie(sessionCookieName); err == nil && c.Value == "sess-1" {
				flag = "true"
			}
			http.SetCookie(w, &http.Cookie{Name: csrfCookieName, Value: testCSRFToken, Path: "/"})
			_, _ = io.WriteString(w, homePage(flag))
		}).Methods(http.MethodGet)
		r.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if r.PostFormValue("email") != "leitor@jc.com.br" || r.PostFormValue("senha") != "segredo123" {
				writeJSON(w, http.StatusOK, map[string]any{
					"success": false,
					"message": "E-mail ou senha incorretos.",
				})
				return
			}
			http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "sess-1", Path: "/"})
			writeJSON(w, http.StatusOK, map[string]any{
				"success":      true,
				"message":      "Login realizado com sucesso!",
				"redirect_url": "/",
			})
		}).Methods(http.MethodPost)
	}

	ctx := context.Background()
	client := newTestSite(t, persister, routes)

	_, err := client.FetchSession(ctx)
	require.NoError(t, err)

	refused, err := client.Login(ctx, domain.Credentials{Email: "leitor@jc.com.br", Password: "errada"})
	require.NoError(t, err)
	assert.False(t, refused.Success)
	assert.Equal(t, "E-mail ou senha incorretos.", refused.Message)

	result, err := client.Login(ctx, domain.Credentials{Email: " leitor@jc.com.br ", Password: "segredo123"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/", result.RedirectURL)

	require.NoError(t, client.PersistSession(ctx))
	stored, err := persister.ListCookies(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// A fresh client restores the session from the persister.
	next := newTestSite(t, persister, routes)
	require.NoError(t, next.RestoreCookies(ctx))

	session, err := next.FetchSession(ctx)
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
}

func TestClient_Register(t *testing.T) {
	var got map[string]string
	client := newTestSite(t, nil, func(r *mux.Router) {
		r.HandleFunc(registerPath, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"errors": map[string]any{
					"email":   "Este e-mail já está cadastrado.",
					"__all__": []string{"Verifique os campos."},
				},
			})
		}).Methods(http.MethodPost)
	})

	result, err := client.Register(context.Background(), domain.Registration{
		Name:                 " Ana ",
		Email:                "ana@jc.com.br",
		Password:             "segredo123",
		PasswordConfirmation: "segredo123",
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"Este e-mail já está cadastrado."}, result.Errors["email"])
	assert.Equal(t, []string{"Verifique os campos."}, result.Errors["__all__"])
	assert.Equal(t, map[string]string{
		"nome":            "Ana",
		"email":           "ana@jc.com.br",
		"senha":           "segredo123",
		"confirmar_senha": "segredo123",
	}, got)
}

func TestClient_Logout(t *testing.T) {
	persister := newFakePersister()
	client := newTestSite(t, persister, func(r *mux.Router) {
		serveHome("false")(r)
		r.HandleFunc(logoutPath, func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Path: "/", MaxAge: -1})
			http.Redirect(w, r, "/", http.StatusFound)
		}).Methods(http.MethodGet)
	})

	ctx := context.Background()
	require.NoError(t, persister.SetCookie(ctx, &http.Cookie{Name: sessionCookieName, Value: "sess-1"}))
	require.NoError(t, client.RestoreCookies(ctx))
	assert.Equal(t, "sess-1", client.cookie(sessionCookieName))

	require.NoError(t, client.Logout(ctx))
	assert.Empty(t, client.cookie(sessionCookieName))

	require.NoError(t, client.PersistSession(ctx))
	stored, err := persister.ListCookies(ctx)
	require.NoError(t, err)
	for _, c := range stored {
		assert.NotEqual(t, sessionCookieName, c.Name)
	}
}

func TestClient_SubmitFeedback(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "tela.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png-bytes"), 0o600))

	var (
		fields   map[string]string
		fileName string
		fileBody string
	)
	client := newTestSite(t, nil, func(r *mux.Router) {
		r.HandleFunc(feedbackPath, func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			fields = map[string]string{}
			for k, v := range r.MultipartForm.Value {
				fields[k] = v[0]
			}
			if f, hdr, err := r.FormFile("imagem"); err == nil {
				fileName = hdr.Filename
				b, _ := io.ReadAll(f)
				fileBody = string(b)
				_ = f.Close()
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"message": "Obrigado pelo seu feedback!",
			})
		}).Methods(http.MethodPost)
	})

	receipt, err := client.SubmitFeedback(context.Background(), domain.Feedback{
		Rating:    4,
		Comment:   "  Gostei da versão curta  ",
		ImagePath: imagePath,
	}.WithDefaults())
	require.NoError(t, err)

	assert.True(t, receipt.Success)
	assert.Equal(t, "Obrigado pelo seu feedback!", receipt.Message)
	assert.Equal(t, map[string]string{
		"avaliacao":  "4",
		"comentario": "Gostei da versão curta",
		"nome":       domain.AnonymousFeedbackName,
		"email":      domain.AnonymousFeedbackEmail,
	}, fields)
	assert.Equal(t, "tela.png", fileName)
	assert.Equal(t, "png-bytes", fileBody)
}

func TestClient_SubmitFeedback_MissingImage(t *testing.T) {
	client, err := NewClient("http://127.0.0.1:1", nil)
	require.NoError(t, err)

	_, err = client.SubmitFeedback(context.Background(), domain.Feedback{
		Rating:    5,
		ImagePath: filepath.Join(t.TempDir(), "missing.png"),
	}.WithDefaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening attachment")
}
