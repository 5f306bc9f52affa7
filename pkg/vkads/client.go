package vkads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/adalchemy/billing/pkg/httpclient"
)

const (
	defaultBaseURL    = "https://api.vk.com/method"
	defaultOAuthURL   = "https://oauth.vk.com"
	defaultAPIVersion = "5.131"

	methodCreateCampaigns = "ads.createCampaigns"
	methodCreateAdGroups  = "ads.createAdGroups"
	methodCreateAds       = "ads.createAds"
)

type API interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (AccessToken, error)
	CreateCampaigns(ctx context.Context, accessToken string, data []CampaignData) ([]int64, error)
	CreateAdGroups(ctx context.Context, accessToken string, data []AdGroupData) ([]int64, error)
	CreateAds(ctx context.Context, accessToken string, data []AdData) ([]int64, error)
}

type client struct {
	cfg        Config
	httpClient httpclient.HTTPClient
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient) API {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.OAuthURL == "" {
		cfg.OAuthURL = defaultOAuthURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	return &client{cfg: cfg, httpClient: httpClient}
}

func (c *client) AuthorizeURL(state string) string {
	query := url.Values{}
	query.Set("client_id", c.cfg.AppID)
	query.Set("redirect_uri", c.cfg.RedirectURL)
	query.Set("scope", "ads")
	query.Set("response_type", "code")
	if state != "" {
		query.Set("state", state)
	}
	return c.cfg.OAuthURL + "/authorize?" + query.Encode()
}

func (c *client) ExchangeCode(ctx context.Context, code string) (AccessToken, error) {
	query := url.Values{}
	query.Set("client_id", c.cfg.AppID)
	query.Set("client_secret", c.cfg.AppSecret)
	query.Set("redirect_uri", c.cfg.RedirectURL)
	query.Set("code", code)

	resp, err := c.httpClient.Get(ctx, c.cfg.OAuthURL+"/access_token?"+query.Encode(), nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return AccessToken{}, ErrTimeout
		}
		return AccessToken{}, err
	}
	defer resp.Body.Close()

	var response oauthResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return AccessToken{}, fmt.Errorf("decoding error: %w", err)
	}

	if response.Error != "" || response.AccessToken == "" {
		return AccessToken{}, fmt.Errorf("%w: %s %s", ErrOAuthFailed, response.Error, response.ErrorDescription)
	}

	return AccessToken{
		Token:     response.AccessToken,
		ExpiresIn: response.ExpiresIn,
		UserID:    response.UserID,
	}, nil
}

func (c *client) CreateCampaigns(ctx context.Context, accessToken string, data []CampaignData) ([]int64, error) {
	return c.create(ctx, methodCreateCampaigns, accessToken, data)
}

func (c *client) CreateAdGroups(ctx context.Context, accessToken string, data []AdGroupData) ([]int64, error) {
	return c.create(ctx, methodCreateAdGroups, accessToken, data)
}

func (c *client) CreateAds(ctx context.Context, accessToken string, data []AdData) ([]int64, error) {
	return c.create(ctx, methodCreateAds, accessToken, data)
}

func (c *client) create(ctx context.Context, method string, accessToken string, data any) ([]int64, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding error: %w", err)
	}

	form := url.Values{}
	form.Set("account_id", c.cfg.AccountID)
	form.Set("data", string(encoded))
	form.Set("access_token", accessToken)
	form.Set("v", c.cfg.APIVersion)

	resp, err := c.httpClient.PostForm(ctx, c.cfg.BaseURL+"/"+method, form)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrServerError, resp.StatusCode)
	}

	var response apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding error: %w", err)
	}

	if response.Error != nil {
		return nil, response.Error
	}

	ids := make([]int64, 0, len(response.Response))
	for _, result := range response.Response {
		if result.ErrorCode != 0 {
			return ids, &APIError{Code: result.ErrorCode, Message: result.ErrorDesc}
		}
		ids = append(ids, result.ID)
	}

	return ids, nil
}
