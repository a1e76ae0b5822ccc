package icons

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	Generic:   "sparkle",
	Alert:     "triangle-alert",
	Brain:     "brain",
	Bulb:      "lightbulb",
	Camera:    "camera",
	Chart:     "chart-column",
	Check:     "check",
	Crown:     "crown",
	Heart:     "heart",
	Lightbulb: "lightbulb",
	Message:   "message-circle",
	Pause:     "pause",
	Play:      "play",
	Shield:    "shield",
	Target:    "target",
	Zap:       "zap",
}

// LucideName returns the Lucide icon name for id.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when id is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return lucideIconNames[Generic]
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for every cataloged glyph.
func LucideSprite() string {
	return lucideSprite
}
