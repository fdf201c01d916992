package domain

// SocialPost is a raw post pulled from a social platform feed before triage.
type SocialPost struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Location string `json:"location"`
}
