// Package ui provides the TubeDL window: URL entry, link type, path pickers
// backed by the preference store, and the progress display driven by the
// download service.
package ui
