package extraction

import "slices"

// Extracted is the aggregate result of running an ordered list of
// techniques against one HTML document. Values within each field appear
// in technique order, then in each technique's own extraction order.
//
// The record is call-scoped: created, populated, returned, discarded.
type Extracted struct {
	Titles       []string `json:"titles,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
	Images       []string `json:"images,omitempty"`
	URLs         []string `json:"urls,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Dates        []string `json:"dates,omitempty"`
	Feeds        []string `json:"feeds,omitempty"`
	Authors      []string `json:"authors,omitempty"`
	Videos       []string `json:"videos,omitempty"`
	Addresses    []string `json:"addresses,omitempty"`
}

// Merge appends a technique's output to the record. The policy is
// append-only: a later technique's value for an already populated field
// is appended after the existing values, never replacing them. Empty
// strings and values already present in the field are skipped.
func (e *Extracted) Merge(fields *Fields) {
	if fields == nil {
		return
	}
	e.Titles = appendUnique(e.Titles, fields.Titles)
	e.Descriptions = appendUnique(e.Descriptions, fields.Descriptions)
	e.Images = appendUnique(e.Images, fields.Images)
	e.URLs = appendUnique(e.URLs, fields.URLs)
	e.Tags = appendUnique(e.Tags, fields.Tags)
	e.Dates = appendUnique(e.Dates, fields.Dates)
	e.Feeds = appendUnique(e.Feeds, fields.Feeds)
	e.Authors = appendUnique(e.Authors, fields.Authors)
	e.Videos = appendUnique(e.Videos, fields.Videos)
	e.Addresses = appendUnique(e.Addresses, fields.Addresses)
}

// Values returns the list for the named field. Unknown fields return nil.
func (e *Extracted) Values(field Field) []string {
	switch field {
	case FieldTitles:
		return e.Titles
	case FieldDescriptions:
		return e.Descriptions
	case FieldImages:
		return e.Images
	case FieldURLs:
		return e.URLs
	case FieldTags:
		return e.Tags
	case FieldDates:
		return e.Dates
	case FieldFeeds:
		return e.Feeds
	case FieldAuthors:
		return e.Authors
	case FieldVideos:
		return e.Videos
	case FieldAddresses:
		return e.Addresses
	}
	return nil
}

// Title returns the best title, or "" if none was extracted.
func (e *Extracted) Title() string { return first(e.Titles) }

// Description returns the best description, or "" if none was extracted.
func (e *Extracted) Description() string { return first(e.Descriptions) }

// Image returns the best image, or "" if none was extracted.
func (e *Extracted) Image() string { return first(e.Images) }

// URL returns the best canonical URL, or "" if none was extracted.
func (e *Extracted) URL() string { return first(e.URLs) }

// Tag returns the best tag, or "" if none was extracted.
func (e *Extracted) Tag() string { return first(e.Tags) }

// Date returns the best date, or "" if none was extracted.
func (e *Extracted) Date() string { return first(e.Dates) }

// Feed returns the best feed, or "" if none was extracted.
func (e *Extracted) Feed() string { return first(e.Feeds) }

// Author returns the best author, or "" if none was extracted.
func (e *Extracted) Author() string { return first(e.Authors) }

// Video returns the best video, or "" if none was extracted.
func (e *Extracted) Video() string { return first(e.Videos) }

// Address returns the best address, or "" if none was extracted.
func (e *Extracted) Address() string { return first(e.Addresses) }

// appendUnique appends values to dst in order, skipping empty strings
// and values dst already contains. Field lists are short enough that a
// linear scan beats maintaining a set.
func appendUnique(dst []string, values []string) []string {
	for _, v := range values {
		if v == "" || slices.Contains(dst, v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

func first(list []string) string {
	if len(list) > 0 {
		return list[0]
	}
	return ""
}
