package service

import (
	"Scoops/config"
	"Scoops/pkg/errorx"
	"Scoops/pkg/log"
	ossclient "Scoops/pkg/oss"
	"Scoops/pkg/snowflake"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

var allowedImageMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type IFileStorage interface {
	// Save stores the uploaded image and returns the public URL.
	Save(ctx context.Context, header *multipart.FileHeader) (string, error)
}

// checkedImage is an upload whose content has been sniffed and decoded far enough to trust its format.
type checkedImage struct {
	file        multipart.File
	ext         string
	contentType string
}

func openImage(header *multipart.FileHeader, maxSize int64) (*checkedImage, error) {
	if header == nil {
		return nil, errorx.Validation("missing image")
	}
	// header.Size comes from the client but still rejects obvious abuse early
	if header.Size <= 0 || header.Size > maxSize {
		return nil, errorx.Validation("image must be between 1 byte and %d bytes", maxSize)
	}

	f, err := header.Open()
	if err != nil {
		return nil, errorx.Wrap(err, "open upload")
	}

	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedImageMime[contentType]
	if !ok {
		_ = f.Close()
		return nil, errorx.Validation("unsupported image type: %s", contentType)
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, errorx.Wrap(err, "rewind upload")
	}

	if _, _, err = image.DecodeConfig(f); err != nil {
		_ = f.Close()
		return nil, errorx.Validation("invalid image")
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, errorx.Wrap(err, "rewind upload")
	}

	return &checkedImage{file: f, ext: ext, contentType: contentType}, nil
}

func objectKey(ext string) string {
	return fmt.Sprintf("products/%s/%s%s", time.Now().UTC().Format("2006/01"), snowflake.GenKey(), ext)
}

// LocalStorage writes images under Dir; the HTTP server serves Dir at PublicPrefix.
type LocalStorage struct {
	Dir          string
	PublicPrefix string
	MaxSize      int64
}

var _ IFileStorage = (*LocalStorage)(nil)

func (s *LocalStorage) Save(ctx context.Context, header *multipart.FileHeader) (string, error) {
	img, err := openImage(header, s.MaxSize)
	if err != nil {
		return "", err
	}
	defer img.file.Close()

	key := objectKey(img.ext)
	dst := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err = os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errorx.Wrap(err, "create image dir")
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", errorx.Wrap(err, "create image file")
	}
	if _, err = io.Copy(out, io.LimitReader(img.file, s.MaxSize)); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", errorx.Wrap(err, "write image file")
	}
	if err = out.Close(); err != nil {
		return "", errorx.Wrap(err, "close image file")
	}

	return path.Join(s.PublicPrefix, key), nil
}

type OssStorage struct {
	Client  *oss.Client
	Bucket  string
	BaseURL string
	MaxSize int64
}

var _ IFileStorage = (*OssStorage)(nil)

func (s *OssStorage) Save(ctx context.Context, header *multipart.FileHeader) (string, error) {
	img, err := openImage(header, s.MaxSize)
	if err != nil {
		return "", err
	}
	defer img.file.Close()

	key := objectKey(img.ext)
	if _, err = s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.Bucket),
		Key:         oss.Ptr(key),
		ContentType: oss.Ptr(img.contentType),
		Body:        io.LimitReader(img.file, s.MaxSize),
	}); err != nil {
		return "", errorx.Wrap(err, "put object")
	}

	return strings.TrimRight(s.BaseURL, "/") + "/" + key, nil
}

func NewFileStorage(conf *config.Storage) (IFileStorage, error) {
	switch conf.Driver {
	case config.StorageOss:
		baseURL := conf.Oss.CdnURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("https://%s.%s", conf.Oss.Bucket, strings.TrimPrefix(conf.Oss.Endpoint, "https://"))
		}
		log.L.Info("file storage", zap.String("driver", conf.Driver), zap.String("bucket", conf.Oss.Bucket))
		return &OssStorage{
			Client:  ossclient.NewClient(conf.Oss),
			Bucket:  conf.Oss.Bucket,
			BaseURL: baseURL,
			MaxSize: conf.MaxSize,
		}, nil
	case config.StorageLocal, "":
		log.L.Info("file storage", zap.String("driver", config.StorageLocal), zap.String("dir", conf.LocalDir))
		return &LocalStorage{
			Dir:          conf.LocalDir,
			PublicPrefix: conf.PublicPrefix,
			MaxSize:      conf.MaxSize,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", conf.Driver)
	}
}
