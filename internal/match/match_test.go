package match

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-launcher/internal/errors"
	"focus-launcher/internal/wm"
	"focus-launcher/internal/wm/wmtest"
	"focus-launcher/pkg/logger"
)

type fakeNames map[uint32]string

func (f fakeNames) ProcessName(pid uint32) (string, error) {
	if name, ok := f[pid]; ok {
		return name, nil
	}
	return "", errors.NewLookup(pid, nil)
}

func newMatcher(backend *wmtest.Backend, names fakeNames) *Matcher {
	log := logger.Nop()
	return NewMatcher(wm.NewDirectory(backend, log), wm.NewFocusStealer(backend, log), names, log)
}

func desktop() *wmtest.Backend {
	return &wmtest.Backend{
		Windows: []wmtest.Window{
			{Handle: 1, Title: "", PID: 10},
			{Handle: 2, Title: "Hidden Chrome", PID: 20, Hidden: true},
			{Handle: 3, Title: "Google Chrome", PID: 20},
			{Handle: 4, Title: "Untitled - Notepad", PID: 30},
			{Handle: 5, Title: "notes.txt - Notepad", PID: 40},
			{Handle: 6, Title: "   ", PID: 30},
			{Handle: 7, Title: "Chrome Remote Desktop", PID: 50},
		},
	}
}

var names = fakeNames{20: "chrome.exe", 30: "notepad.exe", 40: "Notepad.exe", 50: "remoting_host.exe"}

func TestFindAndFocusCaseInsensitiveTitle(t *testing.T) {
	backend := desktop()

	w, ok := newMatcher(backend, names).FindAndFocus(Criteria{Title: "CHROME"})

	require.True(t, ok)
	assert.Equal(t, wm.Handle(3), w.Handle)
	assert.Equal(t, []wm.Handle{3}, backend.Focused())
}

func TestFindFirstMatchWins(t *testing.T) {
	w, ok := newMatcher(desktop(), names).Find(Criteria{Title: "notepad"})

	require.True(t, ok)
	assert.Equal(t, wm.Handle(4), w.Handle)
}

func TestFindWithProcessName(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     wm.Handle
		found    bool
	}{
		{"exact process", Criteria{Title: "chrome", Process: "remoting_host"}, 7, true},
		{"process case", Criteria{Title: "Notepad", Process: "NOTEPAD"}, 4, true},
		{"process with exe", Criteria{Title: "notes", Process: "notepad.exe"}, 5, true},
		{"process mismatch", Criteria{Title: "chrome", Process: "firefox"}, 0, false},
		{"blank process ignored", Criteria{Title: "chrome", Process: "  "}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := newMatcher(desktop(), names).Find(tt.criteria)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, w.Handle)
		})
	}
}

func TestLookupFailureIsNonMatch(t *testing.T) {
	backend := &wmtest.Backend{Windows: []wmtest.Window{
		{Handle: 1, Title: "Untitled - Notepad", PID: 0},
		{Handle: 2, Title: "Untitled - Notepad", PID: 99},
		{Handle: 3, Title: "Untitled - Notepad", PID: 30},
	}}

	w, ok := newMatcher(backend, names).Find(Criteria{Title: "notepad", Process: "notepad"})

	require.True(t, ok)
	assert.Equal(t, wm.Handle(3), w.Handle)
}

func TestHiddenAndUntitledNeverSelected(t *testing.T) {
	backend := &wmtest.Backend{Windows: []wmtest.Window{
		{Handle: 1, Title: "Hidden", PID: 30, Hidden: true},
		{Handle: 2, Title: "", PID: 30},
		{Handle: 3, Title: " \t", PID: 30},
	}}
	m := newMatcher(backend, names)

	_, ok := m.Find(Criteria{Title: "Hidden"})
	assert.False(t, ok)
	_, ok = m.Find(Criteria{Title: " "})
	assert.False(t, ok)
	_, ok = m.FindAndFocus(Criteria{Title: "hidden", Process: "notepad"})
	assert.False(t, ok)
	assert.Empty(t, backend.Focused())
}

func TestInactiveCriteriaNeverEnumerate(t *testing.T) {
	backend := desktop()
	m := newMatcher(backend, names)

	_, ok := m.FindAndFocus(Criteria{Process: "notepad"})
	assert.False(t, ok)
	_, ok = m.FindAndFocus(Criteria{Title: "   "})
	assert.False(t, ok)

	assert.Empty(t, backend.Calls())
}

func TestStopsAtFirstMatch(t *testing.T) {
	backend := desktop()

	_, ok := newMatcher(backend, names).FindAndFocus(Criteria{Title: "google"})

	require.True(t, ok)
	assert.Zero(t, backend.Queried(4))
	assert.Zero(t, backend.Queried(7))
}

func TestFocusErrorsStillSucceed(t *testing.T) {
	backend := desktop()
	backend.ForegroundErr = errors.NewUnsupported("foreground")

	_, ok := newMatcher(backend, names).FindAndFocus(Criteria{Title: "chrome"})
	assert.True(t, ok)
}

func TestFindMatchesIffSomeWindowQualifies(t *testing.T) {
	titles := []string{"alpha", "Beta", "", "gamma ray", "ALPHA centauri"}
	for _, needle := range []string{"alpha", "BETA", "ray", "delta", "a"} {
		backend := &wmtest.Backend{}
		for i, title := range titles {
			backend.Windows = append(backend.Windows, wmtest.Window{
				Handle: wm.Handle(i + 1),
				Title:  title,
				Hidden: i == 1,
			})
		}

		var want wm.Handle
		for _, w := range backend.Windows {
			if !w.Hidden && w.Title != "" && bytes.Contains(bytes.ToLower([]byte(w.Title)), bytes.ToLower([]byte(needle))) {
				want = w.Handle
				break
			}
		}

		w, ok := newMatcher(backend, names).Find(Criteria{Title: needle})
		assert.Equal(t, want != 0, ok, needle)
		assert.Equal(t, want, w.Handle, needle)
	}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	log := logger.Nop()

	require.NoError(t, List(&out, wm.NewDirectory(desktop(), log), names))

	assert.Equal(t, "Google Chrome | chrome\n"+
		"Untitled - Notepad | notepad\n"+
		"notes.txt - Notepad | Notepad\n"+
		"Chrome Remote Desktop | remoting_host\n", out.String())
}

func TestListUnknownProcess(t *testing.T) {
	var out bytes.Buffer
	backend := &wmtest.Backend{Windows: []wmtest.Window{{Handle: 1, Title: "Orphan", PID: 0}}}

	require.NoError(t, List(&out, wm.NewDirectory(backend, logger.Nop()), names))

	assert.Equal(t, "Orphan | (unknown)\n", out.String())
}
