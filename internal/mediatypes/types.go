package mediatypes

// Kind classifies a supported track file by how it is presented.
type Kind string

const (
	// KindAudio represents a playable audio track.
	KindAudio Kind = "audio"
	// KindText represents a transcript or subtitle file.
	KindText Kind = "text"
	// KindImage represents an illustration or scan.
	KindImage Kind = "image"
	// KindOther represents supported but otherwise unclassified files (PDF).
	KindOther Kind = "other"
)

// AudioExtensions maps file extensions to whether they are playable audio
// formats. Audio files are the only kind that carries a duration.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".aac":  true,
	".flac": true,
	".webm": true,
	".mp4":  true,
	".m4a":  true,
}

// TextExtensions maps file extensions to whether they are transcript or
// subtitle formats.
var TextExtensions = map[string]bool{
	".txt": true,
	".lrc": true,
	".srt": true,
	".ass": true,
}

// ImageExtensions maps file extensions to whether they are supported image formats.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// OtherExtensions maps file extensions that are indexed but neither audio,
// text, nor image.
var OtherExtensions = map[string]bool{
	".pdf": true,
}

// GetKind returns the Kind for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".mp3").
// The second return value is false if the extension is not supported at all.
func GetKind(ext string) (Kind, bool) {
	switch {
	case TextExtensions[ext]:
		return KindText, true
	case ImageExtensions[ext]:
		return KindImage, true
	case OtherExtensions[ext]:
		return KindOther, true
	case AudioExtensions[ext]:
		return KindAudio, true
	default:
		return "", false
	}
}

// IsSupported returns true if the extension belongs to any indexed kind.
func IsSupported(ext string) bool {
	_, ok := GetKind(ext)
	return ok
}

// IsAudio returns true if the extension is a playable audio format.
func IsAudio(ext string) bool {
	return AudioExtensions[ext]
}
