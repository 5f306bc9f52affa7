package vkads

type AccessToken struct {
	Token     string `json:"access_token"`
	ExpiresIn int64  `json:"expires_in"`
	UserID    int64  `json:"user_id"`
}

type createResult struct {
	ID        int64  `json:"id"`
	ErrorCode int    `json:"error_code,omitempty"`
	ErrorDesc string `json:"error_desc,omitempty"`
}

type apiResponse struct {
	Response []createResult `json:"response"`
	Error    *APIError      `json:"error"`
}

type oauthResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	UserID           int64  `json:"user_id"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
