package messages

// Prompt and selection dialog messages.
const (
	// PromptRequiresTerminal indicates prompts need an interactive terminal.
	PromptRequiresTerminal  = "prompts require an interactive terminal"
	PromptUIRequired        = "prompt UI is required"
	PromptSelectionRequired = "package selection is required"

	// SelectorNameTitle titles the mod name input.
	SelectorNameTitle        = "Mod name"
	SelectorOptionsTitle     = "Packages to install (applied top to bottom)"
	SelectorActionTitle      = "Install the selected packages?"
	SelectorNoSelectionTitle = "Nothing selected"
	SelectorNoSelectionBody  = "Select at least one package, or choose \"Install manually\" or \"Cancel\"."
	SelectorUnknownActionFmt = "unknown action %q"
	SelectorMissingOptionFmt = "option directory %q not found at the archive root"
	SelectorMergeFailedFmt   = "failed to merge option %q: %w"
)
