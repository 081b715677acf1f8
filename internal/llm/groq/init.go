package groq

import "prepmate/interview/internal/llm"

// Register Groq provider on package import
func init() {
	llm.RegisterProvider("groq", func(settings llm.Settings) (llm.Provider, error) {
		return NewClient(settings)
	})
}
