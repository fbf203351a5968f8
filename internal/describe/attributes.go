package describe

// Attributes are the property facts a description is generated from. All
// fields are free-form strings supplied by the client; numeric values arrive
// as strings too. They are interpolated into the prompt verbatim and never
// persisted server-side.
type Attributes struct {
	PropertyType  string `json:"propertyType"`
	Bedrooms      string `json:"bedrooms"`
	Bathrooms     string `json:"bathrooms"`
	SquareFootage string `json:"squareFootage"`
	Address       string `json:"address"`
	Features      string `json:"features"`
	Tone          string `json:"tone"`
}
