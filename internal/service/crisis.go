package service

import (
	"strings"

	"github.com/limbo/serenity/pkg/entity"
)

var crisisKeywords = []string{
	"hurt myself",
	"end it all",
	"no point",
	"suicide",
	"kill myself",
	"want to die",
	"better off dead",
	"end my life",
	"not worth living",
}

// DetectCrisis returns the first crisis phrase contained in text, matched case-insensitively.
func DetectCrisis(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

var crisisResources = []entity.CrisisResource{
	{
		Title:    "CRISIS TEXT LINE",
		Subtitle: "Text HOME to 741741",
		Kind:     "sms",
		URL:      "sms:741741",
	},
	{
		Title:    "SUICIDE HOTLINE",
		Subtitle: "Call 988",
		Kind:     "phone",
		URL:      "tel:988",
	},
	{
		Title:    "EMERGENCY SERVICES",
		Subtitle: "Call 911",
		Kind:     "phone",
		URL:      "tel:911",
	},
	{
		Title:    "MENTAL HEALTH AMERICA",
		Subtitle: "Find local support and resources",
		Kind:     "web",
		URL:      "https://www.mhanational.org/finding-help",
	},
}

func CrisisResources() []entity.CrisisResource {
	out := make([]entity.CrisisResource, len(crisisResources))
	copy(out, crisisResources)
	return out
}
