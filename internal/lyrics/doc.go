// Package lyrics models song lyric chunks as supplied by the song editor.
//
// A chunk is one labeled section of a song (verse, chorus) holding raw
// newline-separated lyric text and an integer order that sequences chunks
// within the song. The package also loads chunks from plain-text lyric files
// where blank lines separate sections.
package lyrics
