package editor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"archarad-app/internal/i18n"
)

const (
	maxTitleLen       = 200
	maxDistrictLen    = 100
	maxDescriptionLen = 2000
	minYear           = 1800
	maxYear           = 2100
)

// FieldErrors maps a payload field name (title_hu, year, ...) to a
// human-readable message. An empty map means the payload is acceptable.
type FieldErrors map[string]string

// Input is the record-edit payload as submitted: all values are strings,
// year included, before any normalization.
type Input struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Year        string    `json:"year"`
	District    string    `json:"district"`
}

var langNames = map[i18n.Lang]string{
	i18n.HU: "Hungarian",
	i18n.RO: "Romanian",
	i18n.EN: "English",
	i18n.DE: "German",
}

// Validate checks every field rule independently and collects all failures.
// It never errors; callers decide whether to block submission.
func Validate(in Input) FieldErrors {
	errs := FieldErrors{}

	in.Title.Each(func(lang i18n.Lang, value string) {
		field := "title_" + string(lang)
		switch {
		case strings.TrimSpace(value) == "":
			errs[field] = fmt.Sprintf("%s title is required", langNames[lang])
		case utf8.RuneCountInString(value) > maxTitleLen:
			errs[field] = fmt.Sprintf("Title must be at most %d characters", maxTitleLen)
		}
	})

	if strings.TrimSpace(in.Year) != "" {
		year, err := strconv.Atoi(strings.TrimSpace(in.Year))
		if err != nil || year < minYear || year > maxYear {
			errs["year"] = fmt.Sprintf("Year must be between %d and %d", minYear, maxYear)
		}
	}

	if utf8.RuneCountInString(in.District) > maxDistrictLen {
		errs["district"] = fmt.Sprintf("District must be at most %d characters", maxDistrictLen)
	}

	in.Description.Each(func(lang i18n.Lang, value string) {
		if utf8.RuneCountInString(value) > maxDescriptionLen {
			errs["description_"+string(lang)] = fmt.Sprintf("Description must be at most %d characters", maxDescriptionLen)
		}
	})

	return errs
}
