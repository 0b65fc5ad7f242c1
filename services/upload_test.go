package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeFileHeader(t *testing.T, name, contentType string, size int) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("x"), size)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(int64(size) + 1<<20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int
		wantErr     bool
	}{
		{"photo.jpg", "image/jpeg", 1024, false},
		{"photo.png", "image/png", 1024, false},
		{"photo.webp", "image/webp", 1024, false},
		{"doc.pdf", "application/pdf", 1024, true},
		{"anim.gif", "image/gif", 1024, true},
		{"huge.jpg", "image/jpeg", MaxImageSize + 1, true},
	}
	for _, tc := range cases {
		fh := makeFileHeader(t, tc.name, tc.contentType, tc.size)
		err := ValidateImage(fh)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateImage(%s %s %d) = %v, wantErr=%v", tc.name, tc.contentType, tc.size, err, tc.wantErr)
		}
	}
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewImageStorage("", dir)
	if err != nil {
		t.Fatalf("NewImageStorage: %v", err)
	}

	fh := makeFileHeader(t, "photo.jpg", "image/jpeg", 128)
	url, err := storage.Save(context.Background(), fh)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "/api/uploads/") || !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("unexpected url %q", url)
	}

	name := strings.TrimPrefix(url, "/api/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if len(data) != 128 {
		t.Errorf("saved %d bytes, want 128", len(data))
	}

	if err := storage.Delete(context.Background(), url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Errorf("file still present after delete")
	}

	// URLs from another backend are ignored, not an error.
	if err := storage.Delete(context.Background(), "https://res.cloudinary.com/demo/image/upload/v1/x.jpg"); err != nil {
		t.Errorf("foreign url delete: %v", err)
	}
}

func TestCloudinaryPublicIDFromURL(t *testing.T) {
	s := &CloudinaryStorage{folder: "visitborsa"}
	got := s.publicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1712/visitborsa/abc-123.jpg")
	if got != "visitborsa/abc-123" {
		t.Errorf("publicIDFromURL = %q, want visitborsa/abc-123", got)
	}
	if got := s.publicIDFromURL("/api/uploads/local.jpg"); got != "" {
		t.Errorf("local url should yield empty public id, got %q", got)
	}
}
