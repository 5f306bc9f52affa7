package token

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrExpired = errors.New("TOKEN_EXPIRED")
	ErrInvalid = errors.New("TOKEN_INVALID")
)

// Segment describes one audience segment carried inside a campaign token.
type Segment struct {
	SegmentName string `json:"segment_name"`
	AgeRange    string `json:"age_range,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// AdCreative is one ad variant to be published.
type AdCreative struct {
	SegmentName string `json:"segment_name"`
	Headline    string `json:"headline"`
	BodyText    string `json:"body_text"`
	CTA         string `json:"cta,omitempty"`
}

// CampaignClaims are the campaign parameters encoded into a signed,
// expiring token handed to the publisher.
type CampaignClaims struct {
	CampaignName   string       `json:"campaign_name"`
	BudgetDailyRub int64        `json:"budget_daily_rub"`
	BudgetTotalRub int64        `json:"budget_total_rub"`
	LinkURL        string       `json:"link_url"`
	BidType        string       `json:"bid_type"`
	BidRub         float64      `json:"bid_rub"`
	Country        string       `json:"country,omitempty"`
	RegionIDs      []string     `json:"region_ids,omitempty"`
	InterestIDs    []string     `json:"interest_ids,omitempty"`
	AgeFrom        int          `json:"age_from,omitempty"`
	AgeTo          int          `json:"age_to,omitempty"`
	Segments       []Segment    `json:"segments,omitempty"`
	Ads            []AdCreative `json:"ads,omitempty"`
	jwt.StandardClaims
}

// Signer issues and verifies campaign tokens. Signing is HS256, so the
// signature is an HMAC over the token's first two segments and the library
// compares it in constant time.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

func (s *Signer) Sign(claims CampaignClaims) (string, error) {
	now := time.Now()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(s.secret)
}

func (s *Signer) Parse(tokenString string) (*CampaignClaims, error) {
	var claims CampaignClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	return &claims, nil
}
