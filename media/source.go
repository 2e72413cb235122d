package media

// Source lists where an item can be played from, ranked per modality.
// Every field is optional. A source with no playback URL at all is valid and means "nothing to play".
type Source struct {
	VideoPrimary string `json:"video_primary,omitempty" jsonschema:"format=uri"`
	VideoBackup  string `json:"video_backup,omitempty" jsonschema:"format=uri"`
	AudioPrimary string `json:"audio_primary,omitempty" jsonschema:"format=uri"`
	AudioBackup  string `json:"audio_backup,omitempty" jsonschema:"format=uri"`
	PosterImage  string `json:"poster_image,omitempty" jsonschema:"format=uri"`
	MetadataNote string `json:"metadata_note,omitempty"`
}

// HasPlayable reports whether any of the four playback URLs is set.
func (s Source) HasPlayable() bool {
	return s.VideoPrimary != "" || s.VideoBackup != "" || s.AudioPrimary != "" || s.AudioBackup != ""
}

// License carries public-domain flags and notes. It is advisory and never enforced.
type License struct {
	FilmPD       *bool  `json:"film_pd,omitempty"`
	BroadcastPD  *bool  `json:"broadcast_pd,omitempty"`
	RecordingPD  *bool  `json:"recording_pd,omitempty"`
	WorkPD       *bool  `json:"work_pd,omitempty"`
	LicenseNotes string `json:"license_notes,omitempty"`
}

// Ingestion records when the ingestion process fetched the item.
type Ingestion struct {
	FetchedAt Timestamp `json:"fetched_at"`
}
