package explain

// systemPrompts holds the per-language system prompt, keyed by two-letter
// language code. Unrecognized codes fall back to English.
var systemPrompts = map[string]string{
	"en": "You are a network troubleshooting assistant in English.",
	"es": "Eres un asistente de solución de problemas de red en español.",
	"fr": "Vous êtes un assistant de dépannage réseau en français.",
	"ur": "آپ اردو میں نیٹ ورک ٹروبل شوٹنگ اسسٹنٹ ہیں۔",
	"ar": "أنت مساعد استكشاف أخطاء الشبكة باللغة العربية.",
	"af": "Jy is 'n netwerk-probleemoplossingsassistent in Afrikaans.",
	"zu": "Ungusizo lokuxazulula amaproblem emseth-network ngesiZulu.",
	"xh": "Ungomnxeba wokusungula amaproblem emanyango ekuqhubekeni ngesiXhosa.",
	"st": "O moagi wa bothata ba network ka Sesotho.",
	"tn": "O thutapulamolemo ya network ka Setswana.",
}

const promptSuffix = " Provide detailed analysis and step-by-step solutions."

// SystemPrompt returns the assistant instruction for a two-letter language
// code, falling back to the English prompt for unrecognized codes.
func SystemPrompt(langCode string) string {
	prompt, ok := systemPrompts[langCode]
	if !ok {
		prompt = systemPrompts["en"]
	}
	return prompt + promptSuffix
}

// UserPrompt wraps the raw error text in the analysis instruction.
func UserPrompt(errorText string) string {
	return "Analyze this network error: " + errorText
}
