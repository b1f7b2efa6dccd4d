package catalog

// FeatureID identifies a catalog entry. Views and playgrounds dispatch on it
// instead of on display names.
type FeatureID string

const (
	VoiceOver                 FeatureID = "voiceover"
	VoiceControl              FeatureID = "voice-control"
	LargerText                FeatureID = "larger-text"
	DarkInterface             FeatureID = "dark-interface"
	DifferentiateWithoutColor FeatureID = "differentiate-without-color"
	SufficientContrast        FeatureID = "sufficient-contrast"
	ReducedMotion             FeatureID = "reduced-motion"
	Captions                  FeatureID = "captions"
	AudioDescriptions         FeatureID = "audio-descriptions"
)

// Category groups features on the list page.
type Category string

const (
	Vision  Category = "Vision"
	Hearing Category = "Hearing"
	Motor   Category = "Motor"
	Motion  Category = "Motion"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Vision, Hearing, Motor, Motion}
}

func (c Category) Valid() bool {
	switch c {
	case Vision, Hearing, Motor, Motion:
		return true
	}
	return false
}

// Icon is the symbol identifier the category is drawn with.
func (c Category) Icon() string {
	switch c {
	case Vision:
		return "eye.fill"
	case Hearing:
		return "ear.fill"
	case Motor:
		return "hand.raised.fill"
	case Motion:
		return "figure.run"
	}
	return ""
}

// Glyph is the terminal stand-in for Icon.
func (c Category) Glyph() string {
	switch c {
	case Vision:
		return "👁"
	case Hearing:
		return "👂"
	case Motor:
		return "✋"
	case Motion:
		return "🏃"
	}
	return "•"
}

// Color names a palette color, see display.Palette.
func (c Category) Color() string {
	switch c {
	case Vision:
		return "blue"
	case Hearing:
		return "green"
	case Motor:
		return "orange"
	case Motion:
		return "purple"
	}
	return "gray"
}

type Platform string

const (
	IOS      Platform = "iOS"
	IPadOS   Platform = "iPadOS"
	MacOS    Platform = "macOS"
	WatchOS  Platform = "watchOS"
	TvOS     Platform = "tvOS"
	VisionOS Platform = "visionOS"
)

func (p Platform) Valid() bool {
	switch p {
	case IOS, IPadOS, MacOS, WatchOS, TvOS, VisionOS:
		return true
	}
	return false
}

// Icon is the device symbol shown on a platform badge.
func (p Platform) Icon() string {
	switch p {
	case IOS:
		return "iphone"
	case IPadOS:
		return "ipad"
	case MacOS:
		return "macbook"
	case WatchOS:
		return "applewatch"
	case TvOS:
		return "appletv"
	case VisionOS:
		return "visionpro"
	}
	return "questionmark.circle"
}

func (p Platform) Glyph() string {
	switch p {
	case IOS:
		return "▯"
	case IPadOS:
		return "▭"
	case MacOS:
		return "⌨"
	case WatchOS:
		return "⌚"
	case TvOS:
		return "▣"
	case VisionOS:
		return "◎"
	}
	return "?"
}

// Feature is one catalog entry.
type Feature struct {
	ID               FeatureID
	Name             string
	Icon             string
	Glyph            string
	ShortDescription string
	FullDescription  string
	Platforms        []Platform
	Color            string
	ActivationSteps  []string
	Category         Category
}
