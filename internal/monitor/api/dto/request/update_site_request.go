package request

type UpdateSiteRequest struct {
	Name          string `json:"name"`
	URL           string `json:"url" validate:"omitempty,url"`
	CheckInterval int    `json:"check_interval" validate:"omitempty,gte=1,lte=60"`
	NotifyEmail   string `json:"notify_email" validate:"omitempty,email"`
	Active        *bool  `json:"active"`
}
