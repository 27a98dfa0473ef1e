package models

import "time"

type Release struct {
	ID            int64      `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ArtistName    string     `json:"artistName"` // free text, not a foreign key
	CoverURL      string     `json:"coverUrl"`
	PreviewURL    string     `json:"previewUrl"`
	ReleaseType   string     `json:"releaseType"` // "single", "ep", "album"
	SpotifyURL    string     `json:"spotifyUrl"`
	AppleMusicURL string     `json:"appleMusicUrl"`
	YoutubeURL    string     `json:"youtubeUrl"`
	SoundcloudURL string     `json:"soundcloudUrl"`
	BandcampURL   string     `json:"bandcampUrl"`
	Categories    []string   `json:"categories"`
	PublishedAt   *time.Time `json:"publishedAt"` // nullable, ordering only
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
