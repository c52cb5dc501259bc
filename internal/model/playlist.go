package model

// Playlist is an ordered list of tracks with a cursor pointing at the active one.
// The cursor always satisfies 0 <= cursor < Len() when the playlist is non-empty.
type Playlist struct {
	tracks []*Track
	cursor int
}

// NewPlaylist creates a playlist from file paths with the cursor on the first track
func NewPlaylist(paths []string) *Playlist {
	p := &Playlist{}
	p.Replace(paths)
	return p
}

// Replace swaps the contents wholesale and resets the cursor
func (p *Playlist) Replace(paths []string) {
	tracks := make([]*Track, 0, len(paths))
	for _, path := range paths {
		tracks = append(tracks, NewTrack(path))
	}
	p.tracks = tracks
	p.cursor = 0
}

// Len returns the number of tracks
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.tracks)
}

// IsEmpty returns true when there is nothing to play
func (p *Playlist) IsEmpty() bool {
	return p.Len() == 0
}

// Cursor returns the index of the active track
func (p *Playlist) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

// Tracks returns a copy of the track list
func (p *Playlist) Tracks() []*Track {
	if p == nil {
		return nil
	}
	out := make([]*Track, len(p.tracks))
	copy(out, p.tracks)
	return out
}

// At returns the track at index or nil when out of range
func (p *Playlist) At(index int) *Track {
	if index < 0 || index >= p.Len() {
		return nil
	}
	return p.tracks[index]
}

// Current returns the active track or nil for an empty playlist
func (p *Playlist) Current() *Track {
	return p.At(p.Cursor())
}

// PeekNext returns the track that Next would move to without moving the cursor
func (p *Playlist) PeekNext() *Track {
	if p.IsEmpty() {
		return nil
	}
	return p.tracks[wrap(p.cursor+1, len(p.tracks))]
}

// Next advances the cursor with wraparound. It returns false on an empty playlist.
func (p *Playlist) Next() bool {
	return p.step(1)
}

// Previous moves the cursor back with wraparound. It returns false on an empty playlist.
func (p *Playlist) Previous() bool {
	return p.step(-1)
}

// Select moves the cursor to index, wrapping out of range values
func (p *Playlist) Select(index int) bool {
	if p.IsEmpty() {
		return false
	}
	p.cursor = wrap(index, len(p.tracks))
	return true
}

func (p *Playlist) step(delta int) bool {
	if p.IsEmpty() {
		return false
	}
	p.cursor = wrap(p.cursor+delta, len(p.tracks))
	return true
}

// wrap is a modulo that stays non-negative
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
