package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/VidaPetServices01/petshop-manager/internal/config"
)

const maxPhotoSide = 800

// PhotoStorage converte fotos de pets para webp e envia para um
// bucket compatível com S3. Sem bucket configurado fica desligado.
type PhotoStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewPhotoStorage(cfg *config.Config) *PhotoStorage {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return &PhotoStorage{}
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		BaseEndpoint: optionalEndpoint(cfg.S3Endpoint),
		UsePathStyle: cfg.S3Endpoint != "",
	})

	return &PhotoStorage{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func optionalEndpoint(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

func (s *PhotoStorage) Enabled() bool {
	return s.client != nil
}

// UploadPetPhoto decodifica JPEG/PNG, reduz para no máximo 800px
// no maior lado e grava como webp em pets/<id>.webp.
func (s *PhotoStorage) UploadPetPhoto(
	ctx context.Context,
	petID uint,
	raw []byte,
) (string, error) {

	if s.client == nil {
		return "", fmt.Errorf("photo storage disabled")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	key := fmt.Sprintf("pets/%d.webp", petID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxPhotoSide && h <= maxPhotoSide {
		return img
	}

	if w >= h {
		h = h * maxPhotoSide / w
		w = maxPhotoSide
	} else {
		w = w * maxPhotoSide / h
		h = maxPhotoSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
