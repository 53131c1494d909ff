package lyrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout is the pattern embedded in derived output names.
const timestampLayout = "20060102_150405"

// ReadFile reads a UTF-8 lyric file. Extension does not matter; .txt and
// .lrc are the common cases.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read lyrics file: %w", err)
	}
	return string(data), nil
}

// OutputPath derives the save path for a translated file:
// <stem>_<TargetLanguage>_<YYYYMMDD_HHMMSS>.lrc in the source file's
// directory.
func OutputPath(sourcePath, targetLang string, now time.Time) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s_%s_%s.lrc", stem, targetLang, now.Format(timestampLayout))
	return filepath.Join(filepath.Dir(sourcePath), name)
}

// WriteFile writes translated text to path.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write translated file: %w", err)
	}
	return nil
}
