package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/adalchemy/billing/internal/token"
	"github.com/stretchr/testify/assert"
)

func testClaims() token.CampaignClaims {
	return token.CampaignClaims{
		CampaignName:   "Весенняя кампания",
		BudgetDailyRub: 1000,
		BudgetTotalRub: 10000,
		LinkURL:        "https://example.com",
		BidRub:         25.5,
		Segments: []token.Segment{
			{SegmentName: "Родители", AgeRange: "25-34", Gender: "female"},
		},
		Ads: []token.AdCreative{
			{SegmentName: "Родители", Headline: "Заголовок", BodyText: "Текст объявления"},
		},
	}
}

func TestSigner(t *testing.T) {
	t.Run("Round trip preserves claims", func(t *testing.T) {
		signer := token.NewSigner("secret", time.Hour)

		signed, err := signer.Sign(testClaims())
		assert.NoError(t, err)

		claims, err := signer.Parse(signed)
		assert.NoError(t, err)
		assert.Equal(t, "Весенняя кампания", claims.CampaignName)
		assert.Equal(t, int64(1000), claims.BudgetDailyRub)
		assert.Len(t, claims.Segments, 1)
		assert.Equal(t, "25-34", claims.Segments[0].AgeRange)
		assert.Len(t, claims.Ads, 1)
	})

	t.Run("Expired token", func(t *testing.T) {
		signer := token.NewSigner("secret", -time.Minute)

		signed, err := signer.Sign(testClaims())
		assert.NoError(t, err)

		_, err = signer.Parse(signed)
		assert.ErrorIs(t, err, token.ErrExpired)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		signed, err := token.NewSigner("secret", time.Hour).Sign(testClaims())
		assert.NoError(t, err)

		_, err = token.NewSigner("another-secret", time.Hour).Parse(signed)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("Tampered payload", func(t *testing.T) {
		signer := token.NewSigner("secret", time.Hour)

		signed, err := signer.Sign(testClaims())
		assert.NoError(t, err)

		parts := strings.Split(signed, ".")
		assert.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]

		_, err = signer.Parse(tampered)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("Garbage input", func(t *testing.T) {
		signer := token.NewSigner("secret", time.Hour)

		_, err := signer.Parse("not-a-token")
		assert.ErrorIs(t, err, token.ErrInvalid)
	})
}
