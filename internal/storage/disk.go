package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 85

	// MaxUploadSize bounds a single postcard scan.
	MaxUploadSize = 10 << 20
)

// DiskStore keeps postcard scans on the local filesystem. Every upload is
// decoded, width-capped and re-encoded as JPEG, so the stored reference
// always ends in .jpg regardless of the submitted format.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore ensures root exists and returns a store whose public URLs
// hang off baseURL (e.g. "https://archive.example/uploads").
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload processes and writes the image under name, returning the stored
// reference. The write is atomic: a temp file is renamed into place, so a
// failed upload leaves nothing behind.
func (s *DiskStore) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("image exceeds %d bytes", MaxUploadSize)
	}

	encoded, err := process(data)
	if err != nil {
		return "", err
	}

	ref := swapExt(filepath.Base(name), ".jpg")
	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.root, ref)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store upload: %w", err)
	}
	return ref, nil
}

// PublicURL returns the URL a browser loads the stored scan from.
func (s *DiskStore) PublicURL(ref string) string {
	return s.baseURL + "/" + ref
}

// Root is the directory static file serving mounts.
func (s *DiskStore) Root() string {
	return s.root
}

// process decodes the image, scales it down to maxImageWidth if wider and
// re-encodes it as JPEG.
func process(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if w := bounds.Dx(); w > maxImageWidth {
		h := bounds.Dy() * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func swapExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
