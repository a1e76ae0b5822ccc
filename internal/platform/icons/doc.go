// Package icons defines the icon identifiers shared by site templates.
//
// Templates name icons by intent (shield, chart). The package maps each id to
// a Lucide glyph and serves the sprite that the layout inlines once per page.
package icons
