package domain

// PinterestToken holds the OAuth credentials issued after the
// authorization-code exchange. ExpiresAt is unix milliseconds.
type PinterestToken struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// PinterestState ties an in-flight OAuth redirect back to the user who
// started it. Entries expire; a missing state means the flow is stale.
type PinterestState struct {
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
}

// PinterestBoard is the subset of the Pinterest v5 board object the
// frontend renders.
type PinterestBoard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PinCount    int    `json:"pin_count,omitempty"`
}

// PinterestPin is the subset of the Pinterest v5 pin object the frontend
// renders.
type PinterestPin struct {
	ID    string             `json:"id"`
	Title string             `json:"title,omitempty"`
	Link  string             `json:"link,omitempty"`
	Media *PinterestPinMedia `json:"media,omitempty"`
}

type PinterestPinMedia struct {
	Images map[string]PinterestImage `json:"images,omitempty"`
}

type PinterestImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
