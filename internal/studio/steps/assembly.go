package steps

import "time"

// AssemblyDuration is the length of the assembled video.
const AssemblyDuration = 30 * time.Second

// Scene is one segment of the assembly timeline. Name is a catalog key.
type Scene struct {
	Name  string
	Start time.Duration
	End   time.Duration
	Tone  string
}

// Share returns the scene length as a percentage of the whole video.
func (s Scene) Share() int {
	return int((s.End - s.Start) * 100 / AssemblyDuration)
}

// AssemblyTimeline returns the five scenes of the video.
func AssemblyTimeline() []Scene {
	return []Scene{
		{Name: "content.scene.opening", Start: 0, End: 5 * time.Second, Tone: "blue"},
		{Name: "content.scene.problem", Start: 5 * time.Second, End: 12 * time.Second, Tone: "red"},
		{Name: "content.scene.solution", Start: 12 * time.Second, End: 20 * time.Second, Tone: "green"},
		{Name: "content.scene.benefits", Start: 20 * time.Second, End: 25 * time.Second, Tone: "purple"},
		{Name: "content.scene.cta", Start: 25 * time.Second, End: 30 * time.Second, Tone: "orange"},
	}
}

// Brand guard check ids.
const (
	BrandLogo       = "logo"
	BrandColors     = "colors"
	BrandTone       = "tone"
	BrandGuidelines = "guidelines"
)

// BrandToneWarning is the catalog key of the tone check's advisory result.
const BrandToneWarning = "content.brand.tone.warning"

func brandCheck(id string) Check {
	key := "content.brand." + id
	return Check{ID: id, Name: key + ".name", Description: key + ".description", Status: StatusChecking}
}

// BrandGuardScript checks the assembled video against brand rules. Checks
// start in progress and the tone check resolves with a warning.
func BrandGuardScript() Script {
	return Script{
		Checks: []Check{
			brandCheck(BrandLogo),
			brandCheck(BrandColors),
			brandCheck(BrandTone),
			brandCheck(BrandGuidelines),
		},
		Updates: []Update{
			{At: 2000 * time.Millisecond, CheckID: BrandLogo, Status: StatusSuccess, Progress: 100},
			{At: 2600 * time.Millisecond, CheckID: BrandColors, Status: StatusSuccess, Progress: 100},
			{At: 3400 * time.Millisecond, CheckID: BrandTone, Status: StatusWarning, Progress: 100, Description: BrandToneWarning},
			{At: 4400 * time.Millisecond, CheckID: BrandGuidelines, Status: StatusSuccess, Progress: 100},
		},
	}
}

// AssemblyReady always holds: brand warnings are advisory.
func AssemblyReady() bool {
	return true
}
