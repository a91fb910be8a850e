// Package branding centralizes the user-facing product names so binaries
// and interface adapters never hardcode them.
package branding

// AppName is the public product name.
const AppName = "Emberclash.Quest"

// GameTitle is the duel title announced when combat begins.
const GameTitle = "Emberclash"
