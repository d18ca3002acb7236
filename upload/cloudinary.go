package upload

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageUploader stores an uploaded image and returns its public URL.
// file follows cloudinary's upload contract: an io.Reader, a local
// path, a remote URL, or a base64 data URI.
type ImageUploader interface {
	Upload(ctx context.Context, file interface{}) (string, error)
}

// CloudinaryUploader pushes images to Cloudinary.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, folder: "fastbites"}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file interface{}) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
