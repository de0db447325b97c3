package engine

// EstimateTokens approximates the token count of text as ceil(len/4).
// This is the same soft estimate the UI shows next to the editor; exact
// counts come from the provider after a call.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
