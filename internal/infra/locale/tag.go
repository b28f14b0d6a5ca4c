package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// NormalizeTag renders a locale identifier such as "pt-BR", "pt_BR" or
// "pt_BR.UTF-8" as "pt_BR". The region is kept only when it is explicit.
func NormalizeTag(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" {
		return "", fmt.Errorf("empty locale tag %q", raw)
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("parse locale tag %q: %w", raw, err)
	}
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence != language.Exact {
		return base.String(), nil
	}
	return base.String() + "_" + region.String(), nil
}
