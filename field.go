package extraction

// Field names a category of extracted data.
type Field string

// The known field vocabulary. Technique output is limited to these.
const (
	FieldTitles       Field = "titles"
	FieldDescriptions Field = "descriptions"
	FieldImages       Field = "images"
	FieldURLs         Field = "urls"
	FieldTags         Field = "tags"
	FieldDates        Field = "dates"
	FieldFeeds        Field = "feeds"
	FieldAuthors      Field = "authors"
	FieldVideos       Field = "videos"
	FieldAddresses    Field = "addresses"
)

// AllFields lists the field vocabulary in canonical order. Output and
// merge operations iterate fields in this order.
var AllFields = []Field{
	FieldTitles,
	FieldDescriptions,
	FieldImages,
	FieldURLs,
	FieldTags,
	FieldDates,
	FieldFeeds,
	FieldAuthors,
	FieldVideos,
	FieldAddresses,
}

// Valid reports whether the field is part of the known vocabulary.
func (f Field) Valid() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

// Fields holds the values a single technique extracted from one HTML
// document, one ordered list per field. A technique that finds nothing
// for a field leaves its list empty; empty lists are not an error.
type Fields struct {
	Titles       []string
	Descriptions []string
	Images       []string
	URLs         []string
	Tags         []string
	Dates        []string
	Feeds        []string
	Authors      []string
	Videos       []string
	Addresses    []string
}

// Append adds values to the named field, preserving order and skipping
// empty strings. Returns EINVALID if the field is not part of the known
// vocabulary.
func (f *Fields) Append(field Field, values ...string) error {
	list := f.list(field)
	if list == nil {
		return Errorf(EINVALID, "unknown field %q", field)
	}
	for _, v := range values {
		if v != "" {
			*list = append(*list, v)
		}
	}
	return nil
}

// Values returns the list for the named field. Unknown fields return nil.
func (f *Fields) Values(field Field) []string {
	if f == nil {
		return nil
	}
	if list := f.list(field); list != nil {
		return *list
	}
	return nil
}

// Len returns the total number of values held across all fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, field := range AllFields {
		n += len(*f.list(field))
	}
	return n
}

// Empty reports whether no field holds any value.
func (f *Fields) Empty() bool {
	return f.Len() == 0
}

func (f *Fields) list(field Field) *[]string {
	switch field {
	case FieldTitles:
		return &f.Titles
	case FieldDescriptions:
		return &f.Descriptions
	case FieldImages:
		return &f.Images
	case FieldURLs:
		return &f.URLs
	case FieldTags:
		return &f.Tags
	case FieldDates:
		return &f.Dates
	case FieldFeeds:
		return &f.Feeds
	case FieldAuthors:
		return &f.Authors
	case FieldVideos:
		return &f.Videos
	case FieldAddresses:
		return &f.Addresses
	}
	return nil
}
