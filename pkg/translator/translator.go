package translator

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // Empty means every file in the folder
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads "<lang>.toml" message files into Translator. Files for
// languages outside SupportedLanguages are skipped.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	loaded := make([]string, 0, len(lstFiles))
	for _, f := range lstFiles {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}
		lang := strings.TrimSuffix(f.Name(), ".toml")
		if len(cfg.SupportedLanguages) > 0 && !slices.Contains(cfg.SupportedLanguages, lang) {
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
			continue
		}
		loaded = append(loaded, lang)
	}

	for _, lang := range cfg.SupportedLanguages {
		if !slices.Contains(loaded, lang) {
			zap.L().Warn("no translations loaded for language", zap.String("lang", lang))
		}
	}
}
