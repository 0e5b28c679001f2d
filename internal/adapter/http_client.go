package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/erosion-server/internal/config"
	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/utils"
	"github.com/MKhiriev/erosion-server/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs the REST implementation of [APIAdapter].
// It normalises cfg.HTTPAddress and configures the client with the request
// timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIAdapter(cfg config.Adapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

func (h *httpAPIAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIAdapter) Token() string {
	return h.token
}

func (h *httpAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAPIAdapter) Register(ctx context.Context, user models.NewUser) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Int64("id", created.ID).Str("location", resp.Header().Get("Location")).Msg("user registered")
	return created, nil
}

// Login POSTs creds to /auth/login and stores the returned token. The
// token is parsed without verification only to read the user_id claim.
func (h *httpAPIAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	var body models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&body).
		Post("/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var claims models.Claims
	token, _, err := jwt.NewParser().ParseUnverified(body.AuthToken, &claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	h.SetToken(body.AuthToken)
	return models.Token{Token: token, Claims: claims, SignedString: body.AuthToken}, nil
}

func (h *httpAPIAdapter) ListMaps(ctx context.Context) ([]models.Map, error) {
	maps := make([]models.Map, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&maps).
		Get("/maps")
	if err != nil {
		return nil, fmt.Errorf("list maps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return maps, nil
}

func (h *httpAPIAdapter) GetMapLayout(ctx context.Context, mapID int64) ([]models.LayoutTile, error) {
	layout := make([]models.LayoutTile, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(mapID, 10)).
		SetResult(&layout).
		Get("/maps/{id}/layout")
	if err != nil {
		return nil, fmt.Errorf("map layout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return layout, nil
}

func (h *httpAPIAdapter) CreateScore(ctx context.Context, score models.ScoreInput) (models.Score, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Score{}, err
	}

	var created models.Score
	resp, err := req.
		SetBody(score).
		SetResult(&created).
		Post("/scores")
	if err != nil {
		return models.Score{}, fmt.Errorf("create score request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Score{}, err
	}

	return created, nil
}

func (h *httpAPIAdapter) ListUserScores(ctx context.Context, userID int64) ([]models.Score, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	scores := make([]models.Score, 0)
	resp, err := req.
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&scores).
		Get("/users/{id}/scores")
	if err != nil {
		return nil, fmt.Errorf("list scores request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return scores, nil
}

// authedRequest returns a request carrying the stored bearer token.
func (h *httpAPIAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNotLoggedIn
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token), nil
}
