package steps

import "time"

// Preflight check ids.
const (
	PreflightUTM      = "utm"
	PreflightPixel    = "pixel"
	PreflightAudience = "audience"
	PreflightBudget   = "budget"
)

// PreflightPixelMissing is the catalog key of the pixel check failure.
const PreflightPixelMissing = "content.preflight.pixel.missing"

func preflightCheck(id string) Check {
	key := "content.preflight." + id
	return Check{ID: id, Name: key + ".name", Description: key + ".description", Details: key + ".details", Status: StatusPending}
}

// PreflightScript is the launch checklist run. The pixel check always fails,
// so the default run ends blocked.
func PreflightScript() Script {
	return Script{
		Checks: []Check{
			preflightCheck(PreflightUTM),
			preflightCheck(PreflightPixel),
			preflightCheck(PreflightAudience),
			preflightCheck(PreflightBudget),
		},
		Updates: []Update{
			{At: 500 * time.Millisecond, CheckID: PreflightUTM, Status: StatusChecking, Progress: 50},
			{At: 1000 * time.Millisecond, CheckID: PreflightPixel, Status: StatusChecking, Progress: 30},
			{At: 1300 * time.Millisecond, CheckID: PreflightUTM, Status: StatusSuccess, Progress: 100},
			{At: 1500 * time.Millisecond, CheckID: PreflightAudience, Status: StatusChecking, Progress: 70},
			{At: 2000 * time.Millisecond, CheckID: PreflightBudget, Status: StatusChecking, Progress: 90},
			{At: 2200 * time.Millisecond, CheckID: PreflightPixel, Status: StatusError, Progress: 100, Description: PreflightPixelMissing},
			{At: 3000 * time.Millisecond, CheckID: PreflightAudience, Status: StatusSuccess, Progress: 100},
			{At: 4000 * time.Millisecond, CheckID: PreflightBudget, Status: StatusSuccess, Progress: 100},
		},
	}
}

// PreflightReady is the preflight gate: every check resolved, none failed.
func PreflightReady(board Board) bool {
	return board.Passed()
}
