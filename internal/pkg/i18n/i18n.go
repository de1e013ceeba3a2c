package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is consulted when a key is missing from the requested locale.
const DefaultLocale = "en"

const notificationsFile = "notifications.yaml"

// Notification message keys.
const (
	KeyReplyTitle      = "COMMENT_REPLY_TITLE"
	KeyReplyMessage    = "COMMENT_REPLY_MESSAGE"
	KeyUpvoteTitle     = "COMMENT_UPVOTED_TITLE"
	KeyUpvoteMessage   = "COMMENT_UPVOTED_MESSAGE"
	KeyDownvoteTitle   = "COMMENT_DOWNVOTED_TITLE"
	KeyDownvoteMessage = "COMMENT_DOWNVOTED_MESSAGE"
)

type Translations map[string]string

var builtin = Translations{
	KeyReplyTitle:      "New reply to your comment",
	KeyReplyMessage:    "%s replied: %q",
	KeyUpvoteTitle:     "Your comment was upvoted",
	KeyUpvoteMessage:   "People liked your comment %q",
	KeyDownvoteTitle:   "Your comment was downvoted",
	KeyDownvoteMessage: "People disagreed with your comment %q",
}

var (
	locales = make(map[string]Translations)
	mu      sync.RWMutex
)

// LoadTranslations reads <localePath>/<locale>/notifications.yaml for every
// locale directory. Locales without the file are skipped.
func LoadTranslations(localePath string) error {
	entries, err := os.ReadDir(localePath)
	if err != nil {
		return err
	}

	loaded := make(map[string]Translations)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := filepath.Join(localePath, locale, notificationsFile)

		data, err := os.ReadFile(filePath)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}

		var file struct {
			Notifications Translations `yaml:"NOTIFICATIONS"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}
		loaded[locale] = file.Notifications
	}

	mu.Lock()
	defer mu.Unlock()
	for locale, trans := range loaded {
		locales[locale] = trans
	}
	return nil
}

// Translate looks key up in locale, then DefaultLocale, then the built-in
// English texts. Unknown keys come back unchanged.
func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != DefaultLocale {
		if trans, ok := locales[DefaultLocale]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	if val, ok := builtin[key]; ok {
		return val
	}
	return key
}

// Sprintf translates key and formats it with args.
func Sprintf(locale, key string, args ...any) string {
	return fmt.Sprintf(Translate(locale, key), args...)
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	locales = make(map[string]Translations)
}
