package vkads

const (
	CampaignTypeDefault   = 1
	AdFormatCommunityPost = 9
)

type CampaignData struct {
	Name     string `json:"name"`
	Type     int    `json:"type"`
	DayLimit string `json:"day_limit"`
	AllLimit string `json:"all_limit"`
}

type Targeting struct {
	AgeFrom     int      `json:"age_from"`
	AgeTo       int      `json:"age_to"`
	Sex         int      `json:"sex"`
	Country     string   `json:"country"`
	Regions     []string `json:"regions,omitempty"`
	InterestIDs []string `json:"interest_ids,omitempty"`
}

type AdGroupData struct {
	Name       string `json:"name"`
	CampaignID int64  `json:"campaign_id"`
	DayLimit   string `json:"day_limit"`
	Bid        string `json:"bid"`
	// Targeting is carried as a JSON string inside the data payload,
	// matching the ads.createAdGroups wire format.
	Targeting string `json:"targeting"`
}

type AdData struct {
	CampaignID  int64  `json:"campaign_id"`
	AdGroupID   int64  `json:"ad_group_id"`
	Name        string `json:"name"`
	LinkURL     string `json:"link_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AdFormat    string `json:"ad_format"`
}
