// Пакет i18n — интернационализация панели.
// Функции T(ctx, key) и Tf(ctx, key, args...) возвращают переводы
// по языку из контекста запроса. Поддерживаемые языки: O'zbekcha (uz),
// Русский (ru), English (en). Язык определяется middleware:
// cookie "lang" → Accept-Language → default "en".
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Languages — поддерживаемые языки в порядке приоритета matcher'а.
var Languages = []string{"en", "ru", "uz"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
	language.Uzbek,
})

type contextKey string

const contextKeyLang contextKey = "i18n_lang"

// Bundle — каталоги переводов всех языков, плоский JSON key → строка.
type Bundle struct {
	catalogs map[string]map[string]string
}

// Load читает встроенные каталоги locales/{en,ru,uz}.json.
func Load(logger *slog.Logger) (*Bundle, error) {
	b := &Bundle{catalogs: make(map[string]map[string]string, len(Languages))}
	for _, lang := range Languages {
		data, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("i18n: чтение каталога %s: %w", lang, err)
		}
		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("i18n: разбор каталога %s: %w", lang, err)
		}
		b.catalogs[lang] = messages
		logger.Debug("i18n каталог загружен",
			slog.String("lang", lang), slog.Int("keys", len(messages)))
	}
	return b, nil
}

// Translate возвращает перевод по ключу.
// Порядок поиска: запрошенный язык → en → сам ключ.
func (b *Bundle) Translate(lang, key string) string {
	if msg, ok := b.catalogs[lang][key]; ok {
		return msg
	}
	if msg, ok := b.catalogs["en"][key]; ok {
		return msg
	}
	return key
}

// --- Глобальный Bundle ---

var (
	globalBundle *Bundle
	globalOnce   sync.Once
)

// Init устанавливает глобальный Bundle. Вызывается один раз при старте.
func Init(logger *slog.Logger) (*Bundle, error) {
	var err error
	globalOnce.Do(func() {
		globalBundle, err = Load(logger)
	})
	return globalBundle, err
}

// WithLang помещает язык в контекст запроса.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, contextKeyLang, lang)
}

// Lang извлекает язык из контекста. Default: "en".
func Lang(ctx context.Context) string {
	if lang, ok := ctx.Value(contextKeyLang).(string); ok && lang != "" {
		return lang
	}
	return "en"
}

// T возвращает перевод по ключу для языка из контекста.
// Основная функция для view-компонентов: i18n.T(ctx, "users.title").
func T(ctx context.Context, key string) string {
	if globalBundle == nil {
		return key
	}
	return globalBundle.Translate(Lang(ctx), key)
}

// Tf — перевод с подстановкой аргументов (fmt.Sprintf).
// Формат-строки живут в JSON-каталогах, статическая printf-проверка
// к ним неприменима, отсюда вызов через переменную.
func Tf(ctx context.Context, key string, args ...any) string {
	template := T(ctx, key)
	if len(args) == 0 {
		return template
	}
	return formatFunc(template, args...)
}

//nolint:govet // обход printf-анализатора: формат-строка из каталога
var formatFunc = fmt.Sprintf

// Supported сообщает, поддерживается ли код языка.
func Supported(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Match выбирает лучший поддерживаемый язык из Accept-Language.
func Match(acceptLanguage string) string {
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	switch base.String() {
	case "ru":
		return "ru"
	case "uz":
		return "uz"
	default:
		return "en"
	}
}
