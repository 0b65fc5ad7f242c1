package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MaxImageSize   = 5 << 20 // 5 MB per file
	MaxBatchImages = 8
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ValidateImage runs the size/MIME pre-checks shared by both upload routes.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageSize {
		return fmt.Errorf("file %s exceeds the 5MB limit", fh.Filename)
	}
	ct := fh.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[ct]; !ok {
		return fmt.Errorf("unsupported image type %q, allowed: JPEG, PNG, WebP", ct)
	}
	return nil
}

// ImageStorage stores uploaded listing images and removes them again on
// listing deletion.
type ImageStorage interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, url string) error
}

// NewImageStorage routes to Cloudinary when CLOUDINARY_URL is configured,
// local disk otherwise.
func NewImageStorage(cloudinaryURL, uploadDir string) (ImageStorage, error) {
	if cloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(cloudinaryURL)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("image storage: cloudinary")
		return &CloudinaryStorage{cld: cld, folder: "visitborsa"}, nil
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	log.Info().Str("dir", uploadDir).Msg("image storage: local disk")
	return &LocalStorage{Dir: uploadDir, BaseURL: "/api/uploads"}, nil
}

// ---- local disk ----

type LocalStorage struct {
	Dir     string
	BaseURL string
}

func (s *LocalStorage) Save(_ context.Context, fh *multipart.FileHeader) (string, error) {
	ext := allowedImageTypes[fh.Header.Get("Content-Type")]
	name := uuid.NewString() + ext

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.BaseURL + "/" + name, nil
}

func (s *LocalStorage) Delete(_ context.Context, url string) error {
	prefix := s.BaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil // not ours
	}
	name := path.Base(strings.TrimPrefix(url, prefix))
	return os.Remove(filepath.Join(s.Dir, name))
}

// ---- cloudinary ----

type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func (s *CloudinaryStorage) Save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	res, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, url string) error {
	pid := s.publicIDFromURL(url)
	if pid == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: pid})
	return err
}

// publicIDFromURL recovers "<folder>/<id>" from a delivery URL like
// https://res.cloudinary.com/<cloud>/image/upload/v123/<folder>/<id>.jpg
func (s *CloudinaryStorage) publicIDFromURL(url string) string {
	idx := strings.Index(url, "/"+s.folder+"/")
	if idx < 0 {
		return ""
	}
	rest := url[idx+1:]
	return strings.TrimSuffix(rest, path.Ext(rest))
}

// CleanupImages removes listing images in the background after a hard
// delete. Failures only orphan files, so errors are dropped.
func CleanupImages(storage ImageStorage, urls []string) {
	if storage == nil || len(urls) == 0 {
		return
	}
	go func() {
		for _, u := range urls {
			_ = storage.Delete(context.Background(), u)
		}
	}()
}
