package domain

// RedesignRequest pairs an analysis result with the style the user picked.
type RedesignRequest struct {
	WebsiteData WebsiteData `json:"websiteData"`
	DesignStyle DesignStyle `json:"designStyle"`
}

// RedesignResult is a complete generated redesign. HTML and CSS are non-empty
// even when every AI path failed; ID is set only when persistence succeeded.
type RedesignResult struct {
	ID      string `json:"id,omitempty"`
	HTML    string `json:"html"`
	CSS     string `json:"css"`
	Preview string `json:"preview"`
}
