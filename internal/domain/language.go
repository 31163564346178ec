package domain

// Language identifies a source language accepted by the evaluation
// endpoints. The set is closed client-side; the server validates it
// again.
type Language string

const (
	LanguageCPP        Language = "cpp"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
	LanguageJavaScript Language = "javascript"
)

// Languages returns the closed choice list in display order.
func Languages() []Language {
	return []Language{LanguageCPP, LanguagePython, LanguageJava, LanguageJavaScript}
}

func (l Language) Valid() bool {
	switch l {
	case LanguageCPP, LanguagePython, LanguageJava, LanguageJavaScript:
		return true
	}
	return false
}
