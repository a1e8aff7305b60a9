package itinerary

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultImagePosition is implied for images stored as bare url strings.
const DefaultImagePosition = "center"

type imageForm uint8

const (
	imageBare imageForm = iota
	imageObject
)

// DayImage is an image attached to a day. Older tours store bare url
// strings, newer ones {url, position} objects; both decode into DayImage and
// encode back in the form they arrived in. Read through URL and Position.
type DayImage struct {
	form     imageForm
	url      string
	position string
}

func BareImage(url string) DayImage {
	return DayImage{form: imageBare, url: url}
}

func PositionedImage(url, position string) DayImage {
	return DayImage{form: imageObject, url: url, position: position}
}

func (i DayImage) URL() string { return i.url }

func (i DayImage) Position() string {
	if i.form == imageBare || strings.TrimSpace(i.position) == "" {
		return DefaultImagePosition
	}
	return i.position
}

// IsBare reports whether the image is stored in the legacy string form.
func (i DayImage) IsBare() bool { return i.form == imageBare }

// WithURL keeps the representation and position.
func (i DayImage) WithURL(url string) DayImage {
	i.url = url
	return i
}

// WithPosition always yields the object form.
func (i DayImage) WithPosition(position string) DayImage {
	return PositionedImage(i.url, position)
}

type dayImageObject struct {
	URL      string `json:"url"`
	Position string `json:"position,omitempty"`
}

func (i DayImage) MarshalJSON() ([]byte, error) {
	if i.form == imageBare {
		return json.Marshal(i.url)
	}
	return json.Marshal(dayImageObject{URL: i.url, Position: i.position})
}

func (i *DayImage) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = BareImage("")
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = BareImage(s)
		return nil
	}
	var obj dayImageObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*i = PositionedImage(obj.URL, obj.Position)
	return nil
}
