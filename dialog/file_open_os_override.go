//go:build !android && !ios && (!flatpak || windows || wasm || js)

package dialog

func fileOpenOSOverride(*fileDialog) bool {
	return false
}
