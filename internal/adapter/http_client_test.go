package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/seven-sport-admin/internal/config"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResources() config.Resources {
	return config.Resources{
		Admins:         "users",
		Trainers:       "trainer",
		Blogs:          "blog",
		Upload:         "upload",
		Login:          "users/login",
		ChangePassword: "auth/change-password",
		Profile:        "admin/profile",
	}
}

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL, token string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, testResources(), token, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, testResources(), "", logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL_DefaultScheme(t *testing.T) {
	got, err := normalizeBaseURL("server.7sportcenter.uz/api")
	require.NoError(t, err)
	assert.Equal(t, "https://server.7sportcenter.uz/api", got)
}

func TestNormalizeBaseURL_TrailingSlash(t *testing.T) {
	got, err := normalizeBaseURL("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/profile", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"u1","fullName":"Alisher Navoiy","phoneNumber":"901234567"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "test-token")
	got, err := a.Profile(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got.Message)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "Alisher Navoiy", got.FullName)
}

func TestProfile_SoftFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"jwt expired"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "stale-token")
	got, err := a.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "jwt expired", got.Message)
}

func TestProfile_ServerErrorMapsToRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unknown Token"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Profile(context.Background())

	require.Error(t, err)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, "Unknown Token", reqErr.Message)
}

func TestProfile_ErrorWithoutMessageUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Profile(context.Background())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), reqErr.Message)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "901234567", body["phoneNumber"])
		assert.Equal(t, "secret1", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"new-token"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Login(context.Background(), models.LoginInput{PhoneNumber: "901234567", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "new-token", got.Token)
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Неверный номер или пароль"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.LoginInput{PhoneNumber: "901234567", Password: "wrong1"})

	require.Error(t, err)
	assert.Equal(t, "Неверный номер или пароль", ExtractMessage(err, "fallback"))
}

// ── Admins ──────────────────────────────────────────────────────────────────

func TestAdmins_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"1","fullName":"A"},{"_id":"2","fullName":"B"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	got, err := a.Admins(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "B", got[1].FullName)
}

func TestCreateAdmin_SendsPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "secret1", body["password"])
		assert.NotContains(t, body, "_id")

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	err := a.CreateAdmin(context.Background(), models.AdminInput{
		FullName:    "A",
		PhoneNumber: "901234567",
		Password:    "secret1",
	})
	require.NoError(t, err)
}

func TestUpdateAdmin_EmptyPasswordOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "password")

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	err := a.UpdateAdmin(context.Background(), models.AdminInput{
		ID:          "42",
		FullName:    "A",
		PhoneNumber: "901234567",
	})
	require.NoError(t, err)
}

func TestDeleteAdmin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	require.NoError(t, a.DeleteAdmin(context.Background(), "42"))
}

// ── Trainers ────────────────────────────────────────────────────────────────

func TestCreateTrainer_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trainer", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Qora", body["level"])
		assert.Equal(t, "photo-123.jpg", body["photo"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	err := a.CreateTrainer(context.Background(), models.TrainerInput{
		FullName:   "T",
		Experience: "10",
		Students:   "25",
		Level:      models.LevelQora,
		Photo:      "photo-123.jpg",
	})
	require.NoError(t, err)
}

// ── UploadPhoto ─────────────────────────────────────────────────────────────

func TestUploadPhoto_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "avatar.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"filename":"stored-avatar.jpg"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	got, err := a.UploadPhoto(context.Background(), "avatar.jpg", strings.NewReader("image-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "stored-avatar.jpg", got)
}

// ── Blogs ───────────────────────────────────────────────────────────────────

func TestUpdateBlog_MultipartPartialReplacement(t *testing.T) {
	dir := t.TempDir()
	photoPath := filepath.Join(dir, "new.jpg")
	require.NoError(t, os.WriteFile(photoPath, []byte("jpeg-bytes"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/blog/b1", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Title", r.FormValue("title"))
		assert.Equal(t, "Body", r.FormValue("description"))
		assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, r.MultipartForm.Value["existingPhotos"])

		files := r.MultipartForm.File["photos"]
		require.Len(t, files, 1)
		assert.Equal(t, "new.jpg", files[0].Filename)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	err := a.UpdateBlog(context.Background(), models.BlogInput{
		ID:             "b1",
		Title:          "Title",
		Description:    "Body",
		ExistingPhotos: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
		PhotoPaths:     []string{photoPath},
	})
	require.NoError(t, err)
}

func TestCreateBlog_MissingFile(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", "t")
	err := a.CreateBlog(context.Background(), models.BlogInput{
		Title:      "Title",
		PhotoPaths: []string{"/nonexistent/file.jpg"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open blog photo")
}

// ── ExtractMessage ──────────────────────────────────────────────────────────

func TestExtractMessage_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", ExtractMessage(assert.AnError, "fallback"))
	assert.Equal(t, "fallback", ExtractMessage(nil, "fallback"))
}
