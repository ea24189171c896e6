// Package voice binds case characters to synthetic voices from a fixed catalog.
package voice

import "github.com/myrjola/whodunit/internal/models"

// DefaultVoiceID is used when a character cannot be resolved to a bound voice.
const DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM" // Rachel, American female, calm

// Catalog returns the fixed set of selectable ElevenLabs voices. It contains
// at least one profile per gender so the selector's fallbacks always resolve.
func Catalog() []models.VoiceProfile {
	return []models.VoiceProfile{
		{ID: "CwhRBWXzGAHq8TQ4Fs17", Name: "Roger", Gender: models.GenderMale, Accent: "american", Descriptive: "classy", Age: "middle_aged"},
		{ID: "EXAVITQu4vr4xnSDxMaL", Name: "Sarah", Gender: models.GenderFemale, Accent: "american", Descriptive: "professional", Age: "young"},
		{ID: "FGY2WhTYpPnrIDTdsKH5", Name: "Laura", Gender: models.GenderFemale, Accent: "american", Descriptive: "sassy", Age: "young"},
		{ID: "IKne3meq5aSn9XLyUdCD", Name: "Charlie", Gender: models.GenderMale, Accent: "australian", Descriptive: "hyped", Age: "young"},
		{ID: "JBFqnCBsd6RMkjVDRZzb", Name: "George", Gender: models.GenderMale, Accent: "british", Descriptive: "mature", Age: "middle_aged"},
		{ID: "N2lVS1w4EtoT3dr4eOWO", Name: "Callum", Gender: models.GenderMale, Accent: "american", Age: "middle_aged"},
		{ID: "SAz9YHcvj6GT2YYXdXww", Name: "River", Gender: models.GenderNeutral, Accent: "american", Descriptive: "calm", Age: "middle_aged"},
		{ID: "SOYHLrjzK2X1ezoPC6cr", Name: "Harry", Gender: models.GenderMale, Accent: "american", Descriptive: "rough", Age: "young"},
		{ID: "TX3LPaxmHKxFdv7VOQHJ", Name: "Liam", Gender: models.GenderMale, Accent: "american", Descriptive: "confident", Age: "young"},
		{ID: "Xb7hH8MSUJpSbSDYk0k2", Name: "Alice", Gender: models.GenderFemale, Accent: "british", Descriptive: "professional", Age: "middle_aged"},
	}
}
