// Package mediatypes defines the file type classification used throughout
// the audioworks scanning engine.
//
// Every supported extension maps to exactly one of four mutually exclusive
// kinds:
//   - Audio: mp3, ogg, opus, wav, aac, flac, webm, mp4, m4a
//   - Text: txt, lrc, srt, ass (transcripts and subtitles)
//   - Image: jpg, jpeg, png, webp
//   - Other: pdf
//
// Unsupported extensions are filtered out during track enumeration and
// never reach the tree builder.
package mediatypes
