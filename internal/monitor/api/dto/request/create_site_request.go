package request

type CreateSiteRequest struct {
	Name          string `json:"name" validate:"required"`
	URL           string `json:"url" validate:"required,url"`
	CheckInterval int    `json:"check_interval" validate:"required,gte=1,lte=60"`
	NotifyEmail   string `json:"notify_email" validate:"omitempty,email"`
	Active        *bool  `json:"active"`
}
