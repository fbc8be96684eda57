package models

// Media type constants for library items
const (
	MediaTypeMovie      = "movie"
	MediaTypeTVShow     = "tvshow"
	MediaTypeMusicVideo = "musicvideo"
	MediaTypeFiller     = "filler"
	MediaTypePodcast    = "podcast"
	MediaTypeLivestream = "livestream"
)

// Composite schedule entry types that reference a block/marathon instead of a
// single library item
const (
	MediaTypeBlock    = "block"
	MediaTypeMarathon = "marathon"
)

// Occurrence constants for schedule entries
const (
	OccurrenceWeekly   = "weekly"
	OccurrenceWeekdays = "weekdays"
)

// Overlay position constants
const (
	OverlayTopLeft     = "top-left"
	OverlayTopRight    = "top-right"
	OverlayBottomLeft  = "bottom-left"
	OverlayBottomRight = "bottom-right"
)

// MediaTypes lists every flat library media type (excludes block/marathon)
var MediaTypes = []string{
	MediaTypeMovie,
	MediaTypeTVShow,
	MediaTypeMusicVideo,
	MediaTypeFiller,
	MediaTypePodcast,
	MediaTypeLivestream,
}

// IsLibraryType reports whether t names a flat library media type
func IsLibraryType(t string) bool {
	for _, mt := range MediaTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// IsCompositeType reports whether t names a block or marathon entry
func IsCompositeType(t string) bool {
	return t == MediaTypeBlock || t == MediaTypeMarathon
}
