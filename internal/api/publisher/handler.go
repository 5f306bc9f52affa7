package publisher

import (
	"time"

	"github.com/adalchemy/billing/internal/api/contract"
	"github.com/adalchemy/billing/internal/constants"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/service"
	"github.com/adalchemy/billing/internal/session"
	"github.com/adalchemy/billing/pkg/vkads"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const sessionCookie = "sid"

type Handler struct {
	logger  *zap.Logger
	ads     vkads.API
	store   session.Store
	publish service.PublishService
	metrics *metrics.Metrics
}

func NewHandler(logger *zap.Logger, ads vkads.API, store session.Store, publish service.PublishService, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		ads:     ads,
		store:   store,
		publish: publish,
		metrics: metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Login(c *fiber.Ctx) error {
	return c.Redirect(h.ads.AuthorizeURL(c.Query("state")), fiber.StatusFound)
}

// Callback exchanges the authorization code and keeps the credential
// server-side; the browser only ever carries the session id.
func (h *Handler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeValidationFailed,
			"message": "missing code parameter",
		})
	}

	accessToken, err := h.ads.ExchangeCode(c.UserContext(), code)
	if err != nil {
		h.logger.Warn("VK code exchange failed", zap.Error(err))
		return service.NewServiceError(constants.ErrCodeOAuthFailed, err)
	}

	credential := session.Credential{
		AccessToken: accessToken.Token,
		VKUserID:    accessToken.UserID,
	}
	if accessToken.ExpiresIn > 0 {
		credential.ExpiresAt = time.Now().Add(time.Duration(accessToken.ExpiresIn) * time.Second)
	}

	sessionID, err := h.store.Put(c.UserContext(), credential)
	if err != nil {
		return service.NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	h.logger.Info("VK session established", zap.Int64("vk_user_id", accessToken.UserID))

	return c.JSON(contract.Response{Code: "success", Message: "authorized"})
}

func (h *Handler) Publish(c *fiber.Ctx) error {
	campaignToken := c.Query("token")
	if campaignToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeValidationFailed,
			"message": "missing token parameter",
		})
	}

	result, err := h.publish.Publish(c.UserContext(), service.PublishCommand{
		Token:     campaignToken,
		SessionID: c.Cookies(sessionCookie),
	})
	if err != nil {
		h.logger.Warn("Publish failed",
			zap.Int64("campaign_id", result.CampaignID),
			zap.Error(err),
		)
		return h.publishError(c, err, result)
	}

	return c.JSON(contract.Response{Code: "success", Message: "campaign published", Result: result})
}

// publishError reports the partial result alongside the error so orphaned
// remote objects can be cleaned up by hand; the chain never rolls back.
func (h *Handler) publishError(c *fiber.Ctx, err error, partial service.PublishResult) error {
	serviceErr, ok := err.(service.Error)
	if !ok {
		return err
	}

	body := fiber.Map{
		"code":    serviceErr.Code,
		"message": constants.GetErrorMessage(serviceErr.Code),
	}
	if partial.CampaignID != 0 {
		body["created"] = partial
	}

	return c.Status(constants.GetHTTPStatus(serviceErr.Code)).JSON(body)
}
