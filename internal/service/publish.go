package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adalchemy/billing/internal/constants"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/session"
	"github.com/adalchemy/billing/internal/token"
	"github.com/adalchemy/billing/pkg/vkads"
	"go.uber.org/zap"
)

const (
	defaultCampaignName = "Кампания"
	defaultLinkURL      = "https://vk.com"
	defaultDailyRub     = 500
	defaultBidRub       = 15
	defaultAgeFrom      = 18
	defaultAgeTo        = 55
	defaultCountry      = "1"
)

type PublishService interface {
	Publish(ctx context.Context, cmd PublishCommand) (PublishResult, error)
}

type publishService struct {
	signer  *token.Signer
	store   session.Store
	ads     vkads.API
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewPublishService(signer *token.Signer, store session.Store, ads vkads.API, log *zap.Logger, metrics *metrics.Metrics) PublishService {
	return &publishService{signer: signer, store: store, ads: ads, log: log, metrics: metrics}
}

// Publish runs the strict campaign → ad groups → ads chain. The first remote
// failure aborts the chain; objects already created remotely are reported in
// the partial result and left in place, there is no compensating rollback.
func (s *publishService) Publish(ctx context.Context, cmd PublishCommand) (PublishResult, error) {
	start := time.Now()

	claims, err := s.signer.Parse(cmd.Token)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return PublishResult{}, NewServiceError(constants.ErrCodeTokenExpired, err)
		}
		return PublishResult{}, NewServiceError(constants.ErrCodeTokenInvalid, err)
	}

	credential, err := s.store.Get(ctx, cmd.SessionID)
	if err != nil {
		return PublishResult{}, NewServiceError(constants.ErrCodeNoSession, err)
	}

	var result PublishResult

	campaignIDs, err := s.ads.CreateCampaigns(ctx, credential.AccessToken, []vkads.CampaignData{buildCampaign(claims)})
	if err != nil {
		s.metrics.RecordPublish("campaign_failed")
		return result, NewServiceError(constants.ErrCodePublishFailed, err)
	}
	if len(campaignIDs) == 0 {
		s.metrics.RecordPublish("campaign_failed")
		return result, NewServiceError(constants.ErrCodePublishFailed, errors.New("no campaign id returned"))
	}
	result.CampaignID = campaignIDs[0]

	groups, err := buildAdGroups(claims, result.CampaignID)
	if err != nil {
		return result, NewServiceError(constants.ErrCodePublishFailed, err)
	}

	result.AdGroupIDs, err = s.ads.CreateAdGroups(ctx, credential.AccessToken, groups)
	if err != nil {
		s.metrics.RecordPublish("ad_group_failed")
		return result, NewServiceError(constants.ErrCodePublishFailed, err)
	}

	result.AdIDs, err = s.ads.CreateAds(ctx, credential.AccessToken, buildAds(claims, result.CampaignID, result.AdGroupIDs))
	if err != nil {
		s.metrics.RecordPublish("ad_failed")
		return result, NewServiceError(constants.ErrCodePublishFailed, err)
	}

	s.log.Info("Campaign published",
		zap.String("campaign_name", claims.CampaignName),
		zap.Int64("campaign_id", result.CampaignID),
		zap.Int("ad_groups", len(result.AdGroupIDs)),
		zap.Int("ads", len(result.AdIDs)),
		zap.Duration("duration", time.Since(start)),
	)
	s.metrics.RecordPublish("published")

	return result, nil
}

func buildCampaign(claims *token.CampaignClaims) vkads.CampaignData {
	name := claims.CampaignName
	if name == "" {
		name = defaultCampaignName
	}

	return vkads.CampaignData{
		Name:     truncate(name, 100),
		Type:     vkads.CampaignTypeDefault,
		DayLimit: kopecks(claims.BudgetDailyRub, defaultDailyRub),
		AllLimit: kopecks(claims.BudgetTotalRub, 0),
	}
}

func buildAdGroups(claims *token.CampaignClaims, campaignID int64) ([]vkads.AdGroupData, error) {
	segments := claims.Segments
	if len(segments) == 0 {
		for _, ad := range claims.Ads {
			segments = append(segments, token.Segment{SegmentName: ad.SegmentName})
		}
	}
	if len(segments) == 0 {
		segments = []token.Segment{{SegmentName: "Группа 1"}}
	}

	dayLimit := kopecks(claims.BudgetDailyRub, defaultDailyRub)
	bid := bidKopecks(claims.BidRub)

	groups := make([]vkads.AdGroupData, 0, len(segments))
	for i, segment := range segments {
		name := segment.SegmentName
		if name == "" {
			name = fmt.Sprintf("Группа %d", i+1)
		}

		targeting, err := json.Marshal(targetingForSegment(segment, claims))
		if err != nil {
			return nil, err
		}

		groups = append(groups, vkads.AdGroupData{
			Name:       truncate(name, 100),
			CampaignID: campaignID,
			DayLimit:   dayLimit,
			Bid:        bid,
			Targeting:  string(targeting),
		})
	}

	return groups, nil
}

func buildAds(claims *token.CampaignClaims, campaignID int64, groupIDs []int64) []vkads.AdData {
	linkURL := claims.LinkURL
	if linkURL == "" {
		linkURL = defaultLinkURL
	}

	if len(claims.Ads) == 0 {
		name := claims.CampaignName
		if name == "" {
			name = defaultCampaignName
		}
		return []vkads.AdData{{
			CampaignID:  campaignID,
			AdGroupID:   groupID(groupIDs, 0),
			Name:        truncate(name, 100),
			LinkURL:     linkURL,
			Title:       truncate(name, 80),
			Description: "",
			AdFormat:    strconv.Itoa(vkads.AdFormatCommunityPost),
		}}
	}

	ads := make([]vkads.AdData, 0, len(claims.Ads))
	for i, creative := range claims.Ads {
		name := creative.Headline
		if name == "" {
			name = creative.SegmentName
		}
		if name == "" {
			name = fmt.Sprintf("Объявление %d", i+1)
		}

		ads = append(ads, vkads.AdData{
			CampaignID:  campaignID,
			AdGroupID:   groupID(groupIDs, i),
			Name:        truncate(name, 100),
			LinkURL:     linkURL,
			Title:       truncate(creative.Headline, 80),
			Description: truncate(creative.BodyText, 800),
			AdFormat:    strconv.Itoa(vkads.AdFormatCommunityPost),
		})
	}

	return ads
}

func targetingForSegment(segment token.Segment, claims *token.CampaignClaims) vkads.Targeting {
	ageFrom := claims.AgeFrom
	if ageFrom == 0 {
		ageFrom = defaultAgeFrom
	}
	ageTo := claims.AgeTo
	if ageTo == 0 {
		ageTo = defaultAgeTo
	}

	ageRange := strings.ReplaceAll(strings.TrimSpace(segment.AgeRange), " ", "")
	if parts := strings.Split(ageRange, "-"); len(parts) == 2 {
		from, errFrom := strconv.Atoi(parts[0])
		to, errTo := strconv.Atoi(parts[1])
		if errFrom == nil && errTo == nil {
			ageFrom = from
			ageTo = to
		}
	}

	sex := 0
	switch strings.ToLower(segment.Gender) {
	case "male":
		sex = 1
	case "female":
		sex = 2
	}

	country := claims.Country
	if country == "" {
		country = defaultCountry
	}

	return vkads.Targeting{
		AgeFrom:     ageFrom,
		AgeTo:       ageTo,
		Sex:         sex,
		Country:     country,
		Regions:     claims.RegionIDs,
		InterestIDs: claims.InterestIDs,
	}
}

func groupID(groupIDs []int64, i int) int64 {
	if len(groupIDs) == 0 {
		return 0
	}
	if i >= len(groupIDs) {
		return groupIDs[0]
	}
	return groupIDs[i]
}

// Limits are sent in kopecks, as strings, with "0" meaning unlimited.
func kopecks(rub int64, defaultRub int64) string {
	if rub == 0 {
		rub = defaultRub
	}
	if rub == 0 {
		return "0"
	}
	return strconv.FormatInt(rub*100, 10)
}

func bidKopecks(bidRub float64) string {
	if bidRub == 0 {
		bidRub = defaultBidRub
	}
	return strconv.FormatInt(int64(bidRub*100), 10)
}

func truncate(value string, maxLen int) string {
	runes := []rune(value)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return value
}
