package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/translator"
)

var supportedLanguages = []language.Tag{language.English, language.French}

var languageMatcher = language.NewMatcher(supportedLanguages)

// LanguageMiddleware is a Gin middleware that picks the response language from the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
