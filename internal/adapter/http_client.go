package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/config"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpServerAdapter struct {
	client    *resty.Client
	resources config.Resources

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL, configures the underlying resty client with the
// resolved base URL and request timeout, and fixes the Authorization
// header to token for the lifetime of the adapter. An empty token is
// allowed: the identity check then fails softly and the application lands
// on the login screen.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, resources config.Resources, token string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Authorization", strings.TrimSpace(token))

	// Every outbound request carries a fresh request id so client and
	// server logs can be correlated.
	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &httpServerAdapter{client: cli, resources: resources, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Profile implements [ServerAdapter]. It GETs the identity check endpoint
// and decodes the response. The caller distinguishes real identity from a
// soft failure by inspecting ProfileResponse.Message.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profile).
		Get(h.resources.Profile)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials as JSON and
// returns the decoded token/message body.
func (h *httpServerAdapter) Login(ctx context.Context, input models.LoginInput) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&result).
		Post(h.resources.Login)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return result, nil
}

// ChangePassword implements [ServerAdapter].
func (h *httpServerAdapter) ChangePassword(ctx context.Context, input models.ChangePasswordInput) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post(h.resources.ChangePassword)
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapAPIError(resp)
}

// Admins implements [ServerAdapter].
func (h *httpServerAdapter) Admins(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().SetContext(ctx).Get(h.resources.Admins)
	if err != nil {
		return nil, fmt.Errorf("admins request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var items []models.User
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode admins response: %w", err)
	}

	return items, nil
}

// CreateAdmin implements [ServerAdapter].
func (h *httpServerAdapter) CreateAdmin(ctx context.Context, input models.AdminInput) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post(h.resources.Admins)
	if err != nil {
		return fmt.Errorf("create admin request: %w", err)
	}

	return mapAPIError(resp)
}

// UpdateAdmin implements [ServerAdapter]. An empty input.Password is
// omitted from the JSON body, which the server treats as "no change".
func (h *httpServerAdapter) UpdateAdmin(ctx context.Context, input models.AdminInput) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Put(h.resources.Admins + "/" + input.ID)
	if err != nil {
		return fmt.Errorf("update admin request: %w", err)
	}

	return mapAPIError(resp)
}

// DeleteAdmin implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAdmin(ctx context.Context, id string) error {
	resp, err := h.client.R().SetContext(ctx).Delete(h.resources.Admins + "/" + id)
	if err != nil {
		return fmt.Errorf("delete admin request: %w", err)
	}

	return mapAPIError(resp)
}

// Trainers implements [ServerAdapter].
func (h *httpServerAdapter) Trainers(ctx context.Context) ([]models.Trainer, error) {
	resp, err := h.client.R().SetContext(ctx).Get(h.resources.Trainers)
	if err != nil {
		return nil, fmt.Errorf("trainers request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var items []models.Trainer
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode trainers response: %w", err)
	}

	return items, nil
}

// CreateTrainer implements [ServerAdapter].
func (h *httpServerAdapter) CreateTrainer(ctx context.Context, input models.TrainerInput) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(trainerBody(input)).
		Post(h.resources.Trainers)
	if err != nil {
		return fmt.Errorf("create trainer request: %w", err)
	}

	return mapAPIError(resp)
}

// UpdateTrainer implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTrainer(ctx context.Context, input models.TrainerInput) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(trainerBody(input)).
		Put(h.resources.Trainers + "/" + input.ID)
	if err != nil {
		return fmt.Errorf("update trainer request: %w", err)
	}

	return mapAPIError(resp)
}

// DeleteTrainer implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTrainer(ctx context.Context, id string) error {
	resp, err := h.client.R().SetContext(ctx).Delete(h.resources.Trainers + "/" + id)
	if err != nil {
		return fmt.Errorf("delete trainer request: %w", err)
	}

	return mapAPIError(resp)
}

// UploadPhoto implements [ServerAdapter]. It streams r as a multipart
// "file" part and returns the stored filename from the response.
func (h *httpServerAdapter) UploadPhoto(ctx context.Context, fileName string, r io.Reader) (string, error) {
	var result models.UploadResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", fileName, r).
		SetResult(&result).
		Post(h.resources.Upload)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return "", err
	}

	return result.Filename, nil
}

// Blogs implements [ServerAdapter].
func (h *httpServerAdapter) Blogs(ctx context.Context) ([]models.Blog, error) {
	resp, err := h.client.R().SetContext(ctx).Get(h.resources.Blogs)
	if err != nil {
		return nil, fmt.Errorf("blogs request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var items []models.Blog
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode blogs response: %w", err)
	}

	return items, nil
}

// CreateBlog implements [ServerAdapter].
func (h *httpServerAdapter) CreateBlog(ctx context.Context, input models.BlogInput) error {
	req, closeFiles, err := h.blogMultipart(ctx, input)
	if err != nil {
		return err
	}
	defer closeFiles()

	resp, err := req.Post(h.resources.Blogs)
	if err != nil {
		return fmt.Errorf("create blog request: %w", err)
	}

	return mapAPIError(resp)
}

// UpdateBlog implements [ServerAdapter].
func (h *httpServerAdapter) UpdateBlog(ctx context.Context, input models.BlogInput) error {
	req, closeFiles, err := h.blogMultipart(ctx, input)
	if err != nil {
		return err
	}
	defer closeFiles()

	resp, err := req.Put(h.resources.Blogs + "/" + input.ID)
	if err != nil {
		return fmt.Errorf("update blog request: %w", err)
	}

	return mapAPIError(resp)
}

// DeleteBlog implements [ServerAdapter].
func (h *httpServerAdapter) DeleteBlog(ctx context.Context, id string) error {
	resp, err := h.client.R().SetContext(ctx).Delete(h.resources.Blogs + "/" + id)
	if err != nil {
		return fmt.Errorf("delete blog request: %w", err)
	}

	return mapAPIError(resp)
}

// blogMultipart builds the multipart request shared by CreateBlog and
// UpdateBlog: text fields, one "existingPhotos" part per kept URL, one
// "photos" file part per newly attached local file. The returned closer
// releases the opened files and must be called after the request is done.
func (h *httpServerAdapter) blogMultipart(ctx context.Context, input models.BlogInput) (*resty.Request, func(), error) {
	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"title":       input.Title,
			"description": input.Description,
		})

	for _, photo := range input.ExistingPhotos {
		req.SetMultipartFields(&resty.MultipartField{
			Param:       "existingPhotos",
			ContentType: "text/plain",
			Reader:      strings.NewReader(photo),
		})
	}

	opened := make([]*os.File, 0, len(input.PhotoPaths))
	closeFiles := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, path := range input.PhotoPaths {
		f, err := os.Open(path)
		if err != nil {
			closeFiles()
			return nil, nil, fmt.Errorf("open blog photo: %w", err)
		}
		opened = append(opened, f)
		req.SetFileReader("photos", filepath.Base(path), f)
	}

	return req, closeFiles, nil
}

// trainerBody maps a TrainerInput onto the JSON shape the API expects.
func trainerBody(input models.TrainerInput) map[string]any {
	return map[string]any{
		"fullName":   input.FullName,
		"experience": input.Experience,
		"level":      input.Level,
		"students":   input.Students,
		"photo":      input.Photo,
	}
}

// mapAPIError converts a non-2xx response into a [RequestError] carrying
// the server's "message" field when the body has one, or the HTTP status
// text otherwise. 2xx responses map to nil.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.MessageResponse
	_ = json.Unmarshal(resp.Body(), &body)

	message := strings.TrimSpace(body.Message)
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &RequestError{Status: resp.StatusCode(), Message: message}
}
