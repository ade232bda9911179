package schema

import (
	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// TagRequest creates a user tag with its display colors.
type TagRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	BackgroundColor string `json:"background_color"`
	ForegroundColor string `json:"foreground_color"`

	tag types.Tag
}

func (r *TagRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Name == "" {
		verrs.Add("name", missingField)
	}
	r.tag = types.Tag{
		Name:            r.Name,
		Description:     r.Description,
		BackgroundColor: parseColor(&verrs, "background_color", r.BackgroundColor, true),
		ForegroundColor: parseColor(&verrs, "foreground_color", r.ForegroundColor, true),
	}
	return verrs.OrNil()
}

// Tag returns the validated tag.
func (r *TagRequest) Tag() types.Tag { return r.tag }

// TagEditRequest changes the description or colors of an existing tag.
// Absent fields stay unchanged.
type TagEditRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	BackgroundColor *string `json:"background_color"`
	ForegroundColor *string `json:"foreground_color"`

	background *types.HexColorCode
	foreground *types.HexColorCode
}

func (r *TagEditRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Name == "" {
		verrs.Add("name", missingField)
	}
	if r.Description == nil && r.BackgroundColor == nil && r.ForegroundColor == nil {
		verrs.Addf("name", "no field was given to edit for tag %s", r.Name)
	}
	if r.BackgroundColor != nil {
		color := parseColor(&verrs, "background_color", *r.BackgroundColor, true)
		r.background = &color
	}
	if r.ForegroundColor != nil {
		color := parseColor(&verrs, "foreground_color", *r.ForegroundColor, true)
		r.foreground = &color
	}
	return verrs.OrNil()
}

// Background returns the validated background color, nil when unchanged.
func (r *TagEditRequest) Background() *types.HexColorCode { return r.background }

// Foreground returns the validated foreground color, nil when unchanged.
func (r *TagEditRequest) Foreground() *types.HexColorCode { return r.foreground }

// TagDeleteRequest removes a tag by name.
type TagDeleteRequest struct {
	Name string `json:"name"`
}

func (r *TagDeleteRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Name == "" {
		verrs.Add("name", missingField)
	}
	return verrs.OrNil()
}

func parseColor(verrs *validation.Errors, field, raw string, required bool) types.HexColorCode {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return ""
	}
	color, err := types.ParseHexColorCode(raw)
	if err != nil {
		verrs.AddErr(field, err)
	}
	return color
}
