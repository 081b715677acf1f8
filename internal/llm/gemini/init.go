package gemini

import "prepmate/interview/internal/llm"

// Register Gemini provider on package import
func init() {
	llm.RegisterProvider("gemini", func(settings llm.Settings) (llm.Provider, error) {
		return NewClient(settings)
	})
}
