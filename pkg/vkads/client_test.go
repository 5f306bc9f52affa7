package vkads_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adalchemy/billing/pkg/httpclient"
	"github.com/adalchemy/billing/pkg/vkads"
	"github.com/stretchr/testify/assert"
)

func newTestClient(server *httptest.Server) vkads.API {
	cfg := vkads.Config{
		BaseURL:     server.URL,
		OAuthURL:    server.URL,
		AppID:       "12345",
		AppSecret:   "app-secret",
		RedirectURL: "https://example.com/vk/callback",
		AccountID:   "1900000001",
	}
	return vkads.NewClient(cfg, httpclient.NewHTTPClient(5*time.Second))
}

func TestClient_AuthorizeURL(t *testing.T) {
	client := vkads.NewClient(vkads.Config{
		AppID:       "12345",
		RedirectURL: "https://example.com/vk/callback",
	}, nil)

	authorizeURL := client.AuthorizeURL("xyz")

	assert.Contains(t, authorizeURL, "https://oauth.vk.com/authorize?")
	assert.Contains(t, authorizeURL, "client_id=12345")
	assert.Contains(t, authorizeURL, "response_type=code")
	assert.Contains(t, authorizeURL, "scope=ads")
	assert.Contains(t, authorizeURL, "state=xyz")
}

func TestClient_ExchangeCode(t *testing.T) {
	t.Run("Successful exchange", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/access_token", r.URL.Path)
			assert.Equal(t, "12345", r.URL.Query().Get("client_id"))
			assert.Equal(t, "auth-code", r.URL.Query().Get("code"))

			w.Write([]byte(`{"access_token":"vk1.a.token","expires_in":86400,"user_id":42}`))
		}))
		defer server.Close()

		accessToken, err := newTestClient(server).ExchangeCode(context.Background(), "auth-code")

		assert.NoError(t, err)
		assert.Equal(t, "vk1.a.token", accessToken.Token)
		assert.Equal(t, int64(42), accessToken.UserID)
	})

	t.Run("Rejected code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Code is expired."}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).ExchangeCode(context.Background(), "stale-code")

		assert.ErrorIs(t, err, vkads.ErrOAuthFailed)
	})
}

func TestClient_CreateCampaigns(t *testing.T) {
	t.Run("Posts form data and returns ids", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/ads.createCampaigns", r.URL.Path)
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "1900000001", r.PostForm.Get("account_id"))
			assert.Equal(t, "vk1.a.token", r.PostForm.Get("access_token"))
			assert.Equal(t, "5.131", r.PostForm.Get("v"))
			assert.Contains(t, r.PostForm.Get("data"), `"name":"Кампания"`)

			w.Write([]byte(`{"response":[{"id":101}]}`))
		}))
		defer server.Close()

		ids, err := newTestClient(server).CreateCampaigns(context.Background(), "vk1.a.token", []vkads.CampaignData{
			{Name: "Кампания", Type: vkads.CampaignTypeDefault, DayLimit: "50000", AllLimit: "0"},
		})

		assert.NoError(t, err)
		assert.Equal(t, []int64{101}, ids)
	})

	t.Run("Top-level API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"error_code":5,"error_msg":"User authorization failed"}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).CreateCampaigns(context.Background(), "bad-token", nil)

		var apiErr *vkads.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 5, apiErr.Code)
	})

	t.Run("Per-item error stops at the failed item", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response":[{"id":101},{"error_code":100,"error_desc":"invalid params"}]}`))
		}))
		defer server.Close()

		ids, err := newTestClient(server).CreateCampaigns(context.Background(), "vk1.a.token", nil)

		var apiErr *vkads.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 100, apiErr.Code)
		assert.Equal(t, []int64{101}, ids)
	})

	t.Run("Non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server).CreateCampaigns(context.Background(), "vk1.a.token", nil)

		assert.ErrorIs(t, err, vkads.ErrServerError)
	})
}
