package notify

import (
	"fmt"

	"cargo-tracking-service/internal/model"
)

// Catalog maps (language, status) to an SMS body. Unsupported languages fall
// back to English; statuses without a template fall back to a generic line so
// rendering always yields a usable message.
type Catalog struct {
	templates map[string]map[model.Status]string
}

const fallbackLanguage = "en"

func NewCatalog() *Catalog {
	return &Catalog{
		templates: map[string]map[model.Status]string{
			"en": {
				model.Registered: "Your package %s has been registered and is being processed.",
				model.InTransit:  "Your package %s is now in transit.",
				model.Delivered:  "Your package %s has been delivered successfully.",
				model.Delayed:    "Your package %s has been delayed. We apologize for the inconvenience.",
				model.Cancelled:  "Your package %s has been cancelled.",
			},
			"si": {
				model.Registered: "ඔබේ පැකේජය %s ලියාපදිංචි කර ඇති අතර සැකසෙමින් පවතී.",
				model.InTransit:  "ඔබේ පැකේජය %s දැන් ප්‍රවාහනයේ පවතී.",
				model.Delivered:  "ඔබේ පැකේජය %s සාර්ථකව බෙදා හරින ලදී.",
				model.Delayed:    "ඔබේ පැකේජය %s ප්‍රමාද වී ඇත. අපි අපහසුතාවයට කණගාටු වෙමු.",
			},
			"ta": {
				model.Registered: "உங்கள் பொதி %s பதிவு செய்யப்பட்டு செயலாக்கப்படுகிறது.",
				model.InTransit:  "உங்கள் பொதி %s இப்போது போக்குவரத்தில் உள்ளது.",
				model.Delivered:  "உங்கள் பொதி %s வெற்றிகரமாக வழங்கப்பட்டது.",
				model.Delayed:    "உங்கள் பொதி %s தாமதமாகிவிட்டது. அசௌகரியத்திற்கு வருந்துகிறோம்.",
			},
		},
	}
}

func (c *Catalog) Render(language string, status model.Status, trackingID string) string {
	byStatus, ok := c.templates[language]
	if !ok {
		byStatus = c.templates[fallbackLanguage]
	}

	tmpl, ok := byStatus[status]
	if !ok {
		return fmt.Sprintf("Package %s status update: %s", trackingID, status)
	}
	return fmt.Sprintf(tmpl, trackingID)
}
