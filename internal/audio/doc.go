package audio

// Package audio plays local files through the system speaker. It decodes MP3
// and WAV with beep, probes track lengths without starting playback and hides
// the speaker behind the Backend interface used by the player controller.
