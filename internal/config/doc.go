// Package config computes Halcyon's effective configuration by layering
// three sources and materializing the result into one immutable, typed
// Config value.
//
// # Layers
//
//	┌──────────────────────────┐
//	│  3. Workspace            │  ← .halcyon/config.toml (opt-in, untrusted)
//	├──────────────────────────┤
//	│  2. User Global          │  ← ~/.config/halcyon/config.toml (mandatory)
//	├──────────────────────────┤
//	│  1. Built-in Defaults    │  ← compiled in
//	└──────────────────────────┘
//
// Each file decodes into a RawConfig whose fields are all optional; absence
// means "inherit from the layer beneath". Layers merge structurally: the
// editor settings tree merges table-by-table to a fixed depth (package
// merge), and keybindings merge trie-by-trie per mode (package keymap).
//
// # Trust gate
//
// A workspace file is only consulted when the already-merged trusted layers
// set workspace-config = true, and the workspace file itself can never flip
// that flag: only the default→global merge treats the overlay's
// workspace-config as authoritative. A project cannot grant itself the
// power to be merged.
//
// # Errors
//
// All failures surface as *LoadError tagged with KindIO, KindParse, or
// KindSchema. The global file is mandatory: a missing or broken global file
// fails the load. The workspace file is optional: not-found is an empty
// overlay, but any other read failure, and every parse or schema failure,
// is fatal. There is no partial success; callers that want a usable editor
// after a failed load fall back to Default().
//
// # Concurrency
//
// Loading is synchronous and side-effect-free apart from the file reads.
// Config values are immutable once materialized. Store publishes snapshots
// atomically so a reload (Service drives these from file-watch events)
// never exposes a partially-updated configuration.
package config
