package postcards

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"archarad-app/internal/editor"
	"archarad-app/internal/i18n"
	"archarad-app/internal/storage"
)

// inputFromForm reads the edit payload out of a multipart form. Fields
// mirror the admin form: title_hu..title_de, description_hu..description_de,
// year, district.
func inputFromForm(c *gin.Context) editor.Input {
	return editor.Input{
		Title: i18n.Text{
			HU: c.PostForm("title_hu"),
			RO: c.PostForm("title_ro"),
			EN: c.PostForm("title_en"),
			DE: c.PostForm("title_de"),
		},
		Description: i18n.Text{
			HU: c.PostForm("description_hu"),
			RO: c.PostForm("description_ro"),
			EN: c.PostForm("description_en"),
			DE: c.PostForm("description_de"),
		},
		Year:     c.PostForm("year"),
		District: c.PostForm("district"),
	}
}

// imageFromForm reads the optional "image" file part. A missing part is not
// an error here; the orchestrator decides whether an image is required.
func imageFromForm(c *gin.Context) (*editor.ImageFile, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if fh.Size > storage.MaxUploadSize {
		return nil, fmt.Errorf("image exceeds the %d MB limit", storage.MaxUploadSize>>20)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	return &editor.ImageFile{Name: fh.Filename, Data: data}, nil
}
