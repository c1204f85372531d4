package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var MinioClient *minio.Client

// ConnectMinio is optional: without MINIO_ENDPOINT product image upload
// answers 503 and products keep whatever image URL was submitted.
func ConnectMinio(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MinIO not configured — product image upload disabled")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO connection error:", err)
		return
	}

	bucket := bucketName()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Println("⚠️ MinIO bucket check error:", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ MinIO bucket create error:", err)
			return
		}
		log.Println("🪣 Bucket created:", bucket)
	}

	MinioClient = client
	log.Println("✅ Connected to MinIO:", endpoint)
}

// UploadProductImage stores the file under products/<id>/ and returns its URL.
func UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if MinioClient == nil {
		return "", fmt.Errorf("MinIO not configured")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := path.Join("products", productID, file.Filename)
	_, err = MinioClient.PutObject(ctx, bucketName(), objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucketName(), objectName), nil
}

func bucketName() string {
	if b := os.Getenv("MINIO_BUCKET"); b != "" {
		return b
	}
	return "namo"
}
