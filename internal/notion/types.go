package notion

// Wire types for the subset of the Notion API this service touches.
// Command is stored as a title property, Status as a select, and
// Action / Created At / Last Updated as rich text.

// Text is the editable content of a rich-text item.
type Text struct {
	Content string `json:"content"`
}

// RichText is one element of a title or rich_text property value.
type RichText struct {
	PlainText string `json:"plain_text,omitempty"`
	Text      *Text  `json:"text,omitempty"`
}

// SelectOption is the value of a select property.
type SelectOption struct {
	Name string `json:"name"`
}

// Property is a single page property value.
type Property struct {
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
}

// Properties maps property names to values.
type Properties map[string]Property

// Page is a single record in the collection.
type Page struct {
	ID         string     `json:"id"`
	Archived   bool       `json:"archived"`
	Properties Properties `json:"properties"`
}

// TitleProperty builds a title value holding the given text.
func TitleProperty(s string) Property {
	return Property{Title: []RichText{{Text: &Text{Content: s}}}}
}

// RichTextProperty builds a rich_text value holding the given text.
func RichTextProperty(s string) Property {
	return Property{RichText: []RichText{{Text: &Text{Content: s}}}}
}

// SelectProperty builds a select value with the given option name.
func SelectProperty(s string) Property {
	return Property{Select: &SelectOption{Name: s}}
}

func firstText(items []RichText) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	if items[0].PlainText != "" {
		return items[0].PlainText, true
	}
	if items[0].Text != nil {
		return items[0].Text.Content, true
	}
	return "", false
}

// Title extracts the text of a title property. The second return is false
// when the property is absent or has no content; callers must treat such
// pages as malformed rather than failing the whole listing.
func (p Page) Title(name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok {
		return "", false
	}
	return firstText(prop.Title)
}

// RichTextValue extracts the text of a rich_text property.
func (p Page) RichTextValue(name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok {
		return "", false
	}
	return firstText(prop.RichText)
}

// SelectValue extracts the option name of a select property.
func (p Page) SelectValue(name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok || prop.Select == nil || prop.Select.Name == "" {
		return "", false
	}
	return prop.Select.Name, true
}
