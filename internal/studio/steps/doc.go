// Package steps holds the local state and readiness gates of each studio view.
//
// Campaign content (ideas, scripts, thumbnails, check boards, metrics) is
// scripted fixture data authored in Brazilian Portuguese. Nothing here is
// persisted; every view state is rebuilt from its own form values.
package steps
