package utils

import (
	"strings"

	"kkotdam/models"
)

// Option kinds accepted by OptionLabel
const (
	KindOccasion  = "occasion"
	KindRecipient = "recipient"
	KindMood      = "mood"
	KindSize      = "size"
)

var occasionOptions = []models.Option{
	{Value: "LOVE", Label: "사랑"},
	{Value: "THANKS", Label: "감사"},
	{Value: "BIRTHDAY", Label: "생일"},
}

var recipientOptions = []models.Option{
	{Value: "PARTNER", Label: "연인"},
	{Value: "PARENTS", Label: "부모님"},
	{Value: "FRIEND", Label: "친구"},
}

var moodOptions = []models.Option{
	{Value: "BRIGHT", Label: "화사하게"},
	{Value: "CALM", Label: "차분하게"},
	{Value: "LUXURIOUS", Label: "고급스럽게"},
}

var sizeOptions = []models.Option{
	{Value: "S", Label: "Small"},
	{Value: "M", Label: "Medium"},
	{Value: "L", Label: "Large"},
}

// Options returns every selectable option list. The slices are copies.
func Options() models.OptionResponse {
	return models.OptionResponse{
		Occasions:  append([]models.Option(nil), occasionOptions...),
		Recipients: append([]models.Option(nil), recipientOptions...),
		Moods:      append([]models.Option(nil), moodOptions...),
		Sizes:      append([]models.Option(nil), sizeOptions...),
	}
}

// OptionLabel maps an option value to its readable label.
// Input is normalized to uppercase before mapping.
// Unknown kinds or values return the input unchanged.
func OptionLabel(kind string, value string) string {
	var options []models.Option
	switch kind {
	case KindOccasion:
		options = occasionOptions
	case KindRecipient:
		options = recipientOptions
	case KindMood:
		options = moodOptions
	case KindSize:
		options = sizeOptions
	default:
		return value
	}

	valueUpper := strings.ToUpper(strings.TrimSpace(value))
	for _, o := range options {
		if o.Value == valueUpper {
			return o.Label
		}
	}

	return value
}
