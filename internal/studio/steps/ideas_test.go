package steps

import (
	"net/url"
	"testing"
)

func TestIdeaSelectionFromForm(t *testing.T) {
	t.Parallel()

	form := url.Values{
		IdeaSelectedField: {"1", "4", "99", "x"},
		IdeaSelectAction:  {"2"},
		IdeaDropAction:    {"4"},
	}
	sel := IdeaSelectionFromForm(form)
	ids := sel.IDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("IDs() = %v, want [1 2]", ids)
	}
	if !sel.Ready() {
		t.Fatal("Ready() = false, want true")
	}
	if got := sel.Progress(); got != 66 {
		t.Fatalf("Progress() = %d, want 66", got)
	}
}

func TestIdeaSelectionGate(t *testing.T) {
	t.Parallel()

	sel := IdeaSelectionFromForm(url.Values{})
	if sel.Ready() {
		t.Fatal("empty Ready() = true, want false")
	}
	for _, idea := range Ideas() {
		sel.Set(idea.ID, true)
	}
	if got := sel.Progress(); got != 100 {
		t.Fatalf("Progress() = %d, want 100", got)
	}
	if got := sel.Count(); got != 6 {
		t.Fatalf("Count() = %d, want 6", got)
	}
}

func TestChoiceIsExclusive(t *testing.T) {
	t.Parallel()

	c := ChoiceFromForm(url.Values{ChoiceField: {"1"}, ChooseAction: {"3"}}, KnownScript)
	if !c.Chosen(3) || c.Chosen(1) {
		t.Fatalf("Choice = %+v, want 3 chosen only", c)
	}
	if !c.Ready() {
		t.Fatal("Ready() = false, want true")
	}

	c = ChoiceFromForm(url.Values{ChooseAction: {"9"}}, KnownThumbnail)
	if c.Ready() {
		t.Fatalf("Ready() with unknown id = true, want false")
	}
}
