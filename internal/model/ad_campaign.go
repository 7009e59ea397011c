package model

// AdCampaign is a generated search ad set. Its lifecycle is independent of the Report.
// Headline and description lengths are only requested in the prompt, not enforced.
type AdCampaign struct {
	Headlines    []string `json:"headlines" validate:"min=1,dive,required"`
	Descriptions []string `json:"descriptions" validate:"min=1,dive,required"`
	Keywords     []string `json:"keywords"`
}
