package oss

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"VidTube.com/config"
	"VidTube.com/pkg/constants"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func publicUrl(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicUrl, bucketName, objectName)
}

// UploadImage stores an avatar/cover/thumbnail under the picture bucket and
// returns a stable public URL. objectName must not carry a suffix, it is
// derived from the content type.
func UploadImage(ctx context.Context, data []byte, objectName, contentType string) (string, error) {
	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}

	bucketName := constants.PictureBucket
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	objectName = objectName + suffix
	_, err := minioClient.PutObject(ctx, bucketName, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.WithMessage(err, "failed to upload image")
	}
	return publicUrl(bucketName, objectName), nil
}

// UploadVideoFile streams a local file into the video bucket.
func UploadVideoFile(ctx context.Context, localPath, objectName string) (string, error) {
	bucketName := constants.VideoBucket
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}
	_, err := minioClient.FPutObject(ctx, bucketName, objectName,
		localPath, minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", errors.WithMessage(err, "failed to upload video")
	}
	return publicUrl(bucketName, objectName), nil
}

// Remove deletes a previously stored object by its public URL. Unknown URLs
// are ignored so stale references never fail a request.
func Remove(ctx context.Context, rawUrl string) error {
	bucketName, objectName, ok := parseObjectUrl(rawUrl)
	if !ok {
		return nil
	}
	return minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
}

func parseObjectUrl(rawUrl string) (string, string, bool) {
	if rawUrl == "" {
		return "", "", false
	}
	u, err := url.Parse(rawUrl)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
