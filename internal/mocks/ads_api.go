package mocks

import (
	"context"

	"github.com/adalchemy/billing/pkg/vkads"
	"github.com/stretchr/testify/mock"
)

type AdsAPI struct {
	mock.Mock
}

func (m *AdsAPI) AuthorizeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *AdsAPI) ExchangeCode(ctx context.Context, code string) (vkads.AccessToken, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(vkads.AccessToken), args.Error(1)
}

func (m *AdsAPI) CreateCampaigns(ctx context.Context, accessToken string, data []vkads.CampaignData) ([]int64, error) {
	args := m.Called(ctx, accessToken, data)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *AdsAPI) CreateAdGroups(ctx context.Context, accessToken string, data []vkads.AdGroupData) ([]int64, error) {
	args := m.Called(ctx, accessToken, data)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *AdsAPI) CreateAds(ctx context.Context, accessToken string, data []vkads.AdData) ([]int64, error) {
	args := m.Called(ctx, accessToken, data)
	return args.Get(0).([]int64), args.Error(1)
}
