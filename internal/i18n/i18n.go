package i18n

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.en.toml
var catalog embed.FS

const catalogFile = "locales/active.en.toml"

// Translations resolves user-facing messages from the embedded English
// catalog.
type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations() (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	data, err := catalog.ReadFile(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("error reading message catalog: %w", err)
	}

	if _, err := bundle.ParseMessageFileBytes(data, "active.en.toml"); err != nil {
		return nil, fmt.Errorf("error parsing message catalog: %w", err)
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, language.English.String()),
	}, nil
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if count > 0 {
		cfg.PluralCount = count
	}

	localized, err := t.localize.Localize(cfg)
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
