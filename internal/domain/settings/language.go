package settings

import "strings"

// Language is an ISO-639-1 code understood by both the prompt builder and the translator.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Bengali Language = "bn"
	Tamil   Language = "ta"
	Telugu  Language = "te"
	Marathi Language = "mr"
)

// LanguageOption describes a selectable display language.
type LanguageOption struct {
	Code       Language `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"nativeName"`
}

var supported = []LanguageOption{
	{Code: English, Name: "English", NativeName: "English"},
	{Code: Hindi, Name: "Hindi", NativeName: "हिंदी"},
	{Code: Bengali, Name: "Bengali", NativeName: "বাংলা"},
	{Code: Tamil, Name: "Tamil", NativeName: "தமிழ்"},
	{Code: Telugu, Name: "Telugu", NativeName: "తెలుగు"},
	{Code: Marathi, Name: "Marathi", NativeName: "मराठी"},
}

// Supported lists the display languages in menu order.
func Supported() []LanguageOption {
	out := make([]LanguageOption, len(supported))
	copy(out, supported)
	return out
}

// Normalize maps an arbitrary code onto a supported language; unknown codes become English.
func Normalize(code string) Language {
	candidate := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, opt := range supported {
		if opt.Code == candidate {
			return candidate
		}
	}
	return English
}

// IsSupported reports whether code names one of the supported languages.
func IsSupported(code string) bool {
	candidate := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, opt := range supported {
		if opt.Code == candidate {
			return true
		}
	}
	return false
}

// DisplayName is the English name used inside generation prompts.
func (l Language) DisplayName() string {
	for _, opt := range supported {
		if opt.Code == l {
			return opt.Name
		}
	}
	return "English"
}

func (l Language) String() string {
	return string(l)
}
