package model

// Package model defines domain data structures used across the app: download
// requests, run records, collection entries, and the run state enum. Values are
// plain structs so both the GUI and the terminal surface can render them.
