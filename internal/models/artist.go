package models

import "time"

type Artist struct {
	ID            int64     `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"imageUrl"`
	InstagramURL  string    `json:"instagramUrl"`
	SpotifyURL    string    `json:"spotifyUrl"`
	AppleMusicURL string    `json:"appleMusicUrl"`
	YoutubeURL    string    `json:"youtubeUrl"`
	WebsiteURL    string    `json:"websiteUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
