package soundcloud

// soundcloudTrack is the wire shape of a track in the SoundCloud API. The
// catalog reports tempo and key signature when the uploader tagged them;
// energy and danceability are never provided, which is why the engine has an
// imputation path and the worker measures energy from stream audio.
type soundcloudTrack struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	User         soundcloudUser `json:"user"`
	Duration     int            `json:"duration"` // milliseconds
	BPM          float64        `json:"bpm"`
	KeySignature string         `json:"key_signature"`
	Genre        string         `json:"genre"`
	PermalinkURL string         `json:"permalink_url"`
	StreamURL    string         `json:"stream_url"`
}

type soundcloudUser struct {
	Username string `json:"username"`
}
