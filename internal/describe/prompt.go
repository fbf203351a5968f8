package describe

import "fmt"

// BuildPrompt interpolates the attributes into the copywriting prompt. The
// tone key is translated through the lexicon first; everything else is
// inserted verbatim, without validation or escaping.
func BuildPrompt(attrs Attributes) string {
	return fmt.Sprintf(`You are a professional real estate copywriter. Write a compelling property description for the following property:

Property Type: %s
Bedrooms: %s
Bathrooms: %s
Square Footage: %s sq ft
Address: %s

Key Features:
%s

Writing Style: %s

Create a compelling, detailed property description that:
1. Opens with an attention-grabbing introduction
2. Highlights the key features in an engaging way
3. Describes the property's best attributes
4. Mentions the location and neighborhood appeal
5. Ends with a call to action
6. Uses vivid, descriptive language that helps buyers visualize living there
7. Is approximately 150-250 words

Write the description now:`,
		attrs.PropertyType,
		attrs.Bedrooms,
		attrs.Bathrooms,
		attrs.SquareFootage,
		attrs.Address,
		attrs.Features,
		TonePhrase(attrs.Tone))
}
