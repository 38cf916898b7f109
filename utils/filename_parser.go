package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FlowerImageSuffixSeparator separates the flower id from an optional free-form suffix
const FlowerImageSuffixSeparator = "__"

var flowerImageRegex = regexp.MustCompile(`^([A-Za-z0-9][^\s./\\]*?)(?:__[^/\\]*)?\.(?i:png|jpg|jpeg)$`)

// ParseFlowerImageFileName extracts the flower id from an image filename following the pattern:
// FLOWERID[__SUFFIX].png|jpg|jpeg
// Example: Rose_01__front-2.jpg -> Rose_01
// The id keeps its case and may contain '_' and '-'; only "__" starts the suffix.
func ParseFlowerImageFileName(filename string) (string, error) {
	matches := flowerImageRegex.FindStringSubmatch(strings.TrimSpace(filename))
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid filename format: expected FLOWERID[%ssuffix].png|jpg|jpeg, got %s", FlowerImageSuffixSeparator, filename)
	}

	return matches[1], nil
}
