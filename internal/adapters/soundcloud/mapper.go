package soundcloud

import (
	"strconv"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

// toDomain converts a raw SoundCloud track to a clean domain track. Fields
// the catalog leaves untagged stay unset; the engine decides what to do
// about them.
func (st soundcloudTrack) toDomain() domain.Track {
	track := domain.Track{
		ID:         strconv.FormatInt(st.ID, 10),
		Title:      st.Title,
		Artist:     st.User.Username,
		DurationMs: st.Duration,
		Permalink:  st.PermalinkURL,
		PreviewURL: st.StreamURL,
	}
	if st.BPM > 0 {
		track.BPM = st.BPM
	}
	if key, ok := parseKeySignature(st.KeySignature); ok {
		track.Key = &key
	}
	return track
}

func tracksToDomain(raw []soundcloudTrack) []domain.Track {
	tracks := make([]domain.Track, len(raw))
	for i, st := range raw {
		tracks[i] = st.toDomain()
	}
	return tracks
}
