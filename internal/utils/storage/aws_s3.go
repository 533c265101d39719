package storage

import (
	"Stockify-Backend/internal/utils"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// AllowImage is the content-type whitelist for image uploads.
var AllowImage = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var ErrContentTypeNotAllowed = errors.New("file content type is not allowed")

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		DeleteFiles(objectKeys []string) error
		PresignPutObject(fileType string) (string, string, error)
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client  *s3.Client
		presign *s3.PresignClient
		bucket  string
		baseURL string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("S3_REGION")
	endpoint := utils.GetConfig("S3_ENDPOINT")
	bucket := utils.GetConfig("S3_BUCKET")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("S3_ACCESS_KEY"),
			utils.GetConfig("S3_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading S3 configuration: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			// MinIO and other S3-compatible stores need path-style addressing
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	if endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), bucket)
	}

	return &awsS3{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		baseURL: baseURL,
	}
}

func contentTypeAllowed(contentType string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// IsAllowedImageType reports whether contentType is on the image whitelist.
func IsAllowedImageType(contentType string) bool {
	return contentTypeAllowed(contentType, AllowImage)
}

func extensionFor(contentType string) string {
	parts := strings.Split(contentType, "/")
	if len(parts) != 2 {
		return "bin"
	}
	return parts[1]
}

func (s *awsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !contentTypeAllowed(contentType, allowedTypes) {
		return "", ErrContentTypeNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := path.Join(dir, fmt.Sprintf("%s.%s", fileName, extensionFor(contentType)))
	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !contentTypeAllowed(contentType, allowedTypes) {
		return "", ErrContentTypeNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *awsS3) DeleteFile(objectKey string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (s *awsS3) DeleteFiles(objectKeys []string) error {
	if len(objectKeys) == 0 {
		return nil
	}
	objects := make([]types.ObjectIdentifier, 0, len(objectKeys))
	for _, key := range objectKeys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}
	_, err := s.client.DeleteObjects(context.Background(), &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: objects},
	})
	return err
}

// PresignPutObject returns a short-lived PUT URL and the generated object key,
// so browsers can upload directly to the bucket.
func (s *awsS3) PresignPutObject(fileType string) (string, string, error) {
	objectKey := fmt.Sprintf("%s.%s", uuid.NewString(), extensionFor(fileType))

	req, err := s.presign.PresignPutObject(
		context.Background(),
		&s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(objectKey),
			ContentType: aws.String(fileType),
		},
		s3.WithPresignExpires(time.Minute),
	)
	if err != nil {
		return "", "", err
	}
	return req.URL, objectKey, nil
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, objectKey)
}

func (s *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
