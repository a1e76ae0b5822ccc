package steps

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// IdeaTarget is the number of ideas the room nudges the visitor towards.
const IdeaTarget = 3

// Idea is one creative angle. Text fields are catalog keys.
type Idea struct {
	ID          int
	Title       string
	Description string
	Category    string
	Icon        string
}

// Ideas returns the scripted angle catalog.
func Ideas() []Idea {
	icons := []string{"target", "heart", "zap", "lightbulb", "target", "zap"}
	out := make([]Idea, 0, len(icons))
	for i, icon := range icons {
		key := "content.idea." + strconv.Itoa(i+1)
		out = append(out, Idea{
			ID:          i + 1,
			Title:       key + ".title",
			Description: key + ".description",
			Category:    key + ".category",
			Icon:        icon,
		})
	}
	return out
}

// Form names used by the ideas view.
const (
	IdeaSelectedField = "selected"
	IdeaSelectAction  = "select"
	IdeaDropAction    = "deselect"
)

// IdeaSelection is the set of chosen idea ids.
type IdeaSelection struct {
	ids map[int]bool
}

// IdeaSelectionFromForm reads the chosen ids and applies a pending select or
// deselect action. Unknown ids are ignored.
func IdeaSelectionFromForm(form url.Values) IdeaSelection {
	sel := IdeaSelection{ids: map[int]bool{}}
	for _, raw := range form[IdeaSelectedField] {
		sel.toggle(raw, true)
	}
	sel.toggle(form.Get(IdeaSelectAction), true)
	sel.toggle(form.Get(IdeaDropAction), false)
	return sel
}

func (s *IdeaSelection) toggle(raw string, selected bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !knownIdea(id) {
		return
	}
	s.Set(id, selected)
}

// Set selects or deselects id.
func (s *IdeaSelection) Set(id int, selected bool) {
	if s.ids == nil {
		s.ids = map[int]bool{}
	}
	if selected {
		s.ids[id] = true
		return
	}
	delete(s.ids, id)
}

// Selected reports whether id is chosen.
func (s IdeaSelection) Selected(id int) bool {
	return s.ids[id]
}

// IDs returns the chosen ids in ascending order.
func (s IdeaSelection) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Count returns how many ideas are chosen.
func (s IdeaSelection) Count() int {
	return len(s.ids)
}

// Progress is the share of IdeaTarget reached, capped at 100.
func (s IdeaSelection) Progress() int {
	return min(s.Count()*100/IdeaTarget, 100)
}

// Ready is the ideas gate.
func (s IdeaSelection) Ready() bool {
	return s.Count() >= 1
}

func knownIdea(id int) bool {
	for _, idea := range Ideas() {
		if idea.ID == id {
			return true
		}
	}
	return false
}
