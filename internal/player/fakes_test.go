package player

import (
	"errors"
	"sort"
	"time"
)

var errBrokenFile = errors.New("broken file")

// fakeBackend simulates a speaker that stays busy until finish() is called
type fakeBackend struct {
	loaded   string
	playing  bool
	paused   bool
	finished bool

	lengths   map[string]time.Duration
	loadErr   map[string]error
	lengthErr map[string]error

	loads        []string
	lengthCalls  []string
	stops        int
	pauseCalls   int
	unpauseCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		lengths:   make(map[string]time.Duration),
		loadErr:   make(map[string]error),
		lengthErr: make(map[string]error),
	}
}

func (b *fakeBackend) Load(path string) error {
	if err := b.loadErr[path]; err != nil {
		return err
	}
	b.loaded = path
	b.playing = false
	b.paused = false
	b.finished = false
	b.loads = append(b.loads, path)
	return nil
}

func (b *fakeBackend) Play() error {
	if b.loaded == "" {
		return errors.New("not loaded")
	}
	b.playing = true
	b.paused = false
	b.finished = false
	return nil
}

func (b *fakeBackend) Pause() {
	b.pauseCalls++
	b.paused = true
}

func (b *fakeBackend) Unpause() {
	b.unpauseCalls++
	b.paused = false
}

func (b *fakeBackend) Stop() {
	b.stops++
	b.loaded = ""
	b.playing = false
	b.paused = false
}

func (b *fakeBackend) IsBusy() bool {
	return b.loaded != "" && b.playing && !b.paused && !b.finished
}

func (b *fakeBackend) Length(path string) (time.Duration, error) {
	b.lengthCalls = append(b.lengthCalls, path)
	if err := b.lengthErr[path]; err != nil {
		return 0, err
	}
	return b.lengths[path], nil
}

// finish simulates the track draining
func (b *fakeBackend) finish() {
	b.finished = true
}

// fakeView records the last value written to each widget
type fakeView struct {
	nowPlaying  string
	timeText    string
	nextText    string
	progressMax float64
	progress    float64
	playPause   string

	progressHistory []float64
	timeHistory     []string
}

func (v *fakeView) SetNowPlaying(text string) { v.nowPlaying = text }
func (v *fakeView) SetNextText(text string)   { v.nextText = text }
func (v *fakeView) SetProgressMax(m float64)  { v.progressMax = m }
func (v *fakeView) SetPlayPauseText(t string) { v.playPause = t }

func (v *fakeView) SetTimeText(text string) {
	v.timeText = text
	v.timeHistory = append(v.timeHistory, text)
}

func (v *fakeView) SetProgress(value float64) {
	v.progress = value
	v.progressHistory = append(v.progressHistory, value)
}

// fakeClock is a manually advanced clock
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type scheduledFunc struct {
	delay time.Duration
	f     func()
	seq   int
}

// manualScheduler queues callbacks until the test runs them
type manualScheduler struct {
	pending []scheduledFunc
	seq     int
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.seq++
	s.pending = append(s.pending, scheduledFunc{delay: d, f: f, seq: s.seq})
}

// runPending runs the callbacks queued so far, shortest delay first.
// Callbacks they schedule stay queued for the next call.
func (s *manualScheduler) runPending() int {
	batch := s.pending
	s.pending = nil
	sort.SliceStable(batch, func(i, j int) bool { return batch[i].delay < batch[j].delay })
	for _, sf := range batch {
		sf.f()
	}
	return len(batch)
}

// delays returns the delays of the queued callbacks
func (s *manualScheduler) delays() []time.Duration {
	out := make([]time.Duration, 0, len(s.pending))
	for _, sf := range s.pending {
		out = append(out, sf.delay)
	}
	return out
}
