package model

// UsageInfo is the quota snapshot attached to 429 responses.
type UsageInfo struct {
	Used     int    `json:"used"`
	Limit    int    `json:"limit"`
	ResetsAt string `json:"resetsAt"`
}

type UsageResponse struct {
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	ResetsAt  string `json:"resetsAt"`
	IsPremium bool   `json:"isPremium"`
}
