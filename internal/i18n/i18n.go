package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (Brazilian Portuguese).
	DefaultLocale = "pt"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Supports reports whether locale has translations.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Message translates key into the locale requested by c.
func Message(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

// Supported locales, DefaultLocale first. localeMatcher falls back to it.
var (
	supportedLocales = []string{"pt", "en"}
	localeMatcher    = language.NewMatcher([]language.Tag{language.Portuguese, language.English})
)

// GetLocale picks the best supported locale for the request's
// Accept-Language header, honoring q-values. Unparsable or unmatched headers
// get DefaultLocale.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[index]
}

// getDefaultMessages returns the built-in translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
			ErrKeyInternalError:      "Ocorreu um erro inesperado",
			ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:      "Chave de API inválida",
			ErrKeyNotFound:           "Recurso não encontrado",
			ErrKeyMethodNotAllowed:   "Método não permitido",
			ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
			ErrKeyTimeout:            "Tempo limite da requisição excedido",

			ErrKeyIdempotencyKeyInvalid: "Idempotency-Key deve ter no máximo 255 caracteres",
			ErrKeyIdempotencyInFlight:   "Uma requisição com esta Idempotency-Key ainda está em andamento",
			ErrKeyIdempotencyMismatch:   "Idempotency-Key já usada com outro corpo de requisição",

			ErrKeyValidationQuantity: "quantity: deve ser um número positivo",
			ErrKeyValidationOffers:   "offers: deve ser uma lista",
			ErrKeyValidationOffer:    "offers: cada oferta precisa de id único e valores não negativos",

			ErrKeyJobNotFound:        "Otimização não encontrada",
			ErrKeyQueueFull:          "Fila de otimização cheia, tente novamente em instantes",
			ErrKeyHistoryDisabled:    "Histórico de otimizações desativado",
			ErrKeyHistoryUnavailable: "Histórico de otimizações indisponível no momento",
			ErrKeyRunNotFound:        "Execução não encontrada",
			ErrKeyAuditUnavailable:   "Registro de auditoria indisponível no momento",
		},
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyNotFound:           "Resource not found",
			ErrKeyMethodNotAllowed:   "Method not allowed",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyTimeout:            "Request timeout",

			ErrKeyIdempotencyKeyInvalid: "Idempotency-Key must be at most 255 characters",
			ErrKeyIdempotencyInFlight:   "A request with this Idempotency-Key is still in progress",
			ErrKeyIdempotencyMismatch:   "Idempotency-Key was already used with a different request body",

			ErrKeyValidationQuantity: "quantity: must be a positive number",
			ErrKeyValidationOffers:   "offers: must be an array",
			ErrKeyValidationOffer:    "offers: each offer needs a unique id and non-negative values",

			ErrKeyJobNotFound:        "Optimization job not found",
			ErrKeyQueueFull:          "Optimization queue is full, please retry shortly",
			ErrKeyHistoryDisabled:    "Optimization history is disabled",
			ErrKeyHistoryUnavailable: "Optimization history is temporarily unavailable",
			ErrKeyRunNotFound:        "Optimization run not found",
			ErrKeyAuditUnavailable:   "Audit log is temporarily unavailable",
		},
	}
}
