// Command makhela aligns song lyrics to speech-to-text transcripts and
// manages the resulting timestamp data for choir practice material.
package main
