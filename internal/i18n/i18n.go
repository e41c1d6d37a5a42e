// Package i18n translates user-facing messages, constraint captions and report labels.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the built-in messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages(),
	}
}

// GetTranslator returns the shared translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has its own message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the message for key in locale.
// Unknown locales and missing keys fall back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Normalize reduces a language tag such as "tr-TR" to a supported locale.
func (t *Translator) Normalize(tag string) string {
	lang := strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	if t.Supports(lang) {
		return lang
	}
	return DefaultLocale
}

// GetLocale extracts the preferred locale from the Accept-Language header.
// Only the first language range is considered.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}
	first := strings.Split(strings.Split(acceptLang, ",")[0], ";")[0]
	return GetTranslator().Normalize(first)
}

func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyUnauthorized:       "Unauthorized",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyForbidden:          "Forbidden",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "Conflict",
			ErrKeyInvalidToken:       "Invalid or expired token",
			ErrKeyTokenRequired:      "Authentication token is required",
			ErrKeyTimeout:            "Request timed out",
			ErrKeyStorageUnavailable: "Storage is temporarily unavailable",
			ErrKeyTooManyUnits:       "The cargo list expands to too many units",
			ErrKeyContainerNotFound:  "Container not found",
			ErrKeyPresetReadOnly:     "Built-in containers cannot be changed",
			ErrKeyIndexOutOfRange:    "Placement index is out of range",
			ErrKeyManifestNotFound:   "Manifest not found",
			ErrKeyUnsupportedFormat:  "Unsupported format",
			ErrKeyInvalidManifest:    "The manifest could not be read",
			ErrKeyNothingPlaced:      "The plan has no placed items",

			ErrKeyIdempotencyInFlight: "A request with this idempotency key is still being processed",
			ErrKeyIdempotencyMismatch: "This idempotency key was already used with a different request",
			ErrKeyInvalidIdempotency:  "The idempotency key is invalid",
			ErrKeyInvalidLogFilter:    "The log query is invalid",

			ConstraintLabelPrefix + "must_be_on_top":          "Must Be On Top",
			ConstraintLabelPrefix + "must_be_on_bottom":       "Must Be On Bottom",
			ConstraintLabelPrefix + "fragile":                 "Fragile",
			ConstraintLabelPrefix + "no_rotate":               "No Rotate",
			ConstraintLabelPrefix + "heavy_bottom":            "Heavy - Bottom",
			ConstraintDescriptionPrefix + "must_be_on_top":    "Nothing can be placed on top of this item",
			ConstraintDescriptionPrefix + "must_be_on_bottom": "This item should be placed near the ground",
			ConstraintDescriptionPrefix + "fragile":           "Maximum 20kg load can be placed on top",
			ConstraintDescriptionPrefix + "no_rotate":         "Can only be placed in the specified orientation",
			ConstraintDescriptionPrefix + "heavy_bottom":      "Heavy item, should be at bottom and center",

			ReportKeyTitle:             "Container Load Plan",
			ReportKeyContainer:         "Container",
			ReportKeyVolumeUsage:       "Volume Usage",
			ReportKeyWeightUsage:       "Weight Usage",
			ReportKeyPacked:            "Packed",
			ReportKeyUnpacked:          "Unpacked",
			ReportKeyTotalWeight:       "Total Weight",
			ReportKeyTotalVolume:       "Total Volume",
			ReportKeyUsedVolume:        "Used Volume",
			ReportKeyTopView:           "Top view",
			ReportKeySideView:          "Side view",
			ReportKeyPlacements:        "Placements",
			ReportKeyUnpackedItems:     "Unpacked Items",
			ReportKeyItem:              "Item",
			ReportKeyPosition:          "Position (cm)",
			ReportKeyDimensions:        "Size (cm)",
			ReportKeyWeight:            "Weight (kg)",
			ReportKeyConstraints:       "Constraints",
			ReportKeySummary:           "Summary",
			ReportKeyGeneratedAt:       "Generated",
			ReportKeyNothingLeftBehind: "Every unit was loaded",
		},
		"tr": {
			ErrKeyInvalidRequest:     "Geçersiz istek",
			ErrKeyInvalidRequestBody: "Geçersiz istek gövdesi",
			ErrKeyInternalError:      "Beklenmeyen bir hata oluştu",
			ErrKeyUnauthorized:       "Yetkisiz",
			ErrKeyAPIKeyRequired:     "API anahtarı gerekli",
			ErrKeyInvalidAPIKey:      "Geçersiz API anahtarı",
			ErrKeyForbidden:          "Yasak",
			ErrKeyNotFound:           "Bulunamadı",
			ErrKeyRateLimitExceeded:  "Çok fazla istek, lütfen daha sonra tekrar deneyin",
			ErrKeyConflict:           "Çakışma",
			ErrKeyInvalidToken:       "Geçersiz veya süresi dolmuş belirteç",
			ErrKeyTokenRequired:      "Kimlik doğrulama belirteci gerekli",
			ErrKeyTimeout:            "İstek zaman aşımına uğradı",
			ErrKeyStorageUnavailable: "Depolama geçici olarak kullanılamıyor",
			ErrKeyTooManyUnits:       "Eşya listesi çok fazla birime açılıyor",
			ErrKeyContainerNotFound:  "Konteyner bulunamadı",
			ErrKeyPresetReadOnly:     "Hazır konteynerler değiştirilemez",
			ErrKeyIndexOutOfRange:    "Yerleşim indeksi aralık dışında",
			ErrKeyManifestNotFound:   "Yükleme listesi bulunamadı",
			ErrKeyUnsupportedFormat:  "Desteklenmeyen biçim",
			ErrKeyInvalidManifest:    "Yükleme listesi okunamadı",
			ErrKeyNothingPlaced:      "Planda yerleşmiş eşya yok",

			ErrKeyIdempotencyInFlight: "Bu idempotency anahtarıyla gönderilen istek hâlâ işleniyor",
			ErrKeyIdempotencyMismatch: "Bu idempotency anahtarı farklı bir istekle kullanıldı",
			ErrKeyInvalidIdempotency:  "Idempotency anahtarı geçersiz",
			ErrKeyInvalidLogFilter:    "Kayıt sorgusu geçersiz",

			ConstraintLabelPrefix + "must_be_on_top":          "Üstte Olmalı",
			ConstraintLabelPrefix + "must_be_on_bottom":       "Altta Olmalı",
			ConstraintLabelPrefix + "fragile":                 "Kırılgan",
			ConstraintLabelPrefix + "no_rotate":               "Döndürülemez",
			ConstraintLabelPrefix + "heavy_bottom":            "Ağır - Alta",
			ConstraintDescriptionPrefix + "must_be_on_top":    "Bu eşyanın üstüne hiçbir şey konulamaz",
			ConstraintDescriptionPrefix + "must_be_on_bottom": "Bu eşya zemine yakın olmalı",
			ConstraintDescriptionPrefix + "fragile":           "Üstüne maksimum 20kg yük konulabilir",
			ConstraintDescriptionPrefix + "no_rotate":         "Sadece belirtilen yönde yerleştirilebilir",
			ConstraintDescriptionPrefix + "heavy_bottom":      "Ağır eşya, altta ve merkezde olmalı",

			ReportKeyTitle:             "Konteyner Yükleme Planı",
			ReportKeyContainer:         "Konteyner",
			ReportKeyVolumeUsage:       "Hacim Kullanımı",
			ReportKeyWeightUsage:       "Ağırlık Kullanımı",
			ReportKeyPacked:            "Yerleşti",
			ReportKeyUnpacked:          "Sığmadı",
			ReportKeyTotalWeight:       "Toplam Ağırlık",
			ReportKeyTotalVolume:       "Toplam Hacim",
			ReportKeyUsedVolume:        "Kullanılan Hacim",
			ReportKeyTopView:           "Üstten görünüm",
			ReportKeySideView:          "Yandan görünüm",
			ReportKeyPlacements:        "Yerleşimler",
			ReportKeyUnpackedItems:     "Sığmayan Eşyalar",
			ReportKeyItem:              "Eşya",
			ReportKeyPosition:          "Konum (cm)",
			ReportKeyDimensions:        "Boyut (cm)",
			ReportKeyWeight:            "Ağırlık (kg)",
			ReportKeyConstraints:       "Kısıtlamalar",
			ReportKeySummary:           "Özet",
			ReportKeyGeneratedAt:       "Oluşturulma",
			ReportKeyNothingLeftBehind: "Tüm birimler yüklendi",
		},
	}
}
