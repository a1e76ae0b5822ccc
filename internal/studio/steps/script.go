package steps

import (
	"net/url"
	"strconv"
	"strings"
)

// ScriptDraft is one generated video script. Text fields are catalog keys.
type ScriptDraft struct {
	ID       int
	Title    string
	Scenes   []string
	Type     string
	Duration string
	CTA      string
}

// Scripts returns the generated script catalog.
func Scripts() []ScriptDraft {
	drafts := []struct {
		scenes   int
		duration string
	}{
		{scenes: 5, duration: "30s"},
		{scenes: 6, duration: "25s"},
		{scenes: 6, duration: "20s"},
	}
	out := make([]ScriptDraft, 0, len(drafts))
	for i, d := range drafts {
		key := "content.script." + strconv.Itoa(i+1)
		scenes := make([]string, d.scenes)
		for n := range scenes {
			scenes[n] = key + ".scene." + strconv.Itoa(n+1)
		}
		out = append(out, ScriptDraft{
			ID:       i + 1,
			Title:    key + ".title",
			Scenes:   scenes,
			Type:     key + ".type",
			Duration: d.duration,
			CTA:      key + ".cta",
		})
	}
	return out
}

// Frame is one storyboard panel.
type Frame struct {
	Title       string
	Description string
}

// StoryboardLength is the number of storyboard frames.
const StoryboardLength = 6

// Storyboard returns the frames shown once a script is approved.
func Storyboard() []Frame {
	out := make([]Frame, StoryboardLength)
	for i := range out {
		key := "content.storyboard." + strconv.Itoa(i+1)
		out[i] = Frame{Title: key + ".title", Description: key + ".description"}
	}
	return out
}

// Form names used by the script and thumbnail views.
const (
	ChoiceField  = "chosen"
	ChooseAction = "choose"
)

// Choice is an exclusive pick among a fixed catalog, as used by script
// approval and thumbnail selection. Zero means nothing is chosen.
type Choice struct {
	ID int
}

// ChoiceFromForm reads the current pick and applies a pending choose action.
// ids outside known are ignored.
func ChoiceFromForm(form url.Values, known func(int) bool) Choice {
	var c Choice
	for _, raw := range []string{form.Get(ChoiceField), form.Get(ChooseAction)} {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || known == nil || !known(id) {
			continue
		}
		c.ID = id
	}
	return c
}

// Chosen reports whether id is the pick.
func (c Choice) Chosen(id int) bool {
	return c.ID != 0 && c.ID == id
}

// Ready is the gate shared by script and thumbnail.
func (c Choice) Ready() bool {
	return c.ID != 0
}

// KnownScript reports whether id names a script.
func KnownScript(id int) bool {
	for _, s := range Scripts() {
		if s.ID == id {
			return true
		}
	}
	return false
}
