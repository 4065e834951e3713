// Package platform contains OS integration and external tooling glue:
// filesystem helpers, collection listing via the ytdlp library and
// opening folders in the system file manager.
package platform
