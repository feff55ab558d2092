package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"treinahub_backend/internal/config"
	"treinahub_backend/internal/util"
	"treinahub_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// UploadResult descreve o arquivo gravado e, para vídeos, a duração sondada.
type UploadResult struct {
	URL      string  `json:"url"`
	Size     int64   `json:"tamanho"`
	Duration float64 `json:"duracao,omitempty"`
}

// StorageService grava anexos e vídeos de treinamento em disco local ou MinIO.
type StorageService struct {
	cfg   *config.Config
	minio *minio.Client
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	s := &StorageService{cfg: cfg}
	if cfg.Storage.Type == util.StorageMinio {
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("falha ao conectar no MinIO: %w", err)
		}
		s.minio = client
	}
	return s, nil
}

// SaveVideo grava o vídeo e devolve a URL e a duração lida por ffprobe.
func (s *StorageService) SaveVideo(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("extensão de vídeo não suportada: %s", ext)
	}

	// O probe precisa de um caminho local, então o arquivo passa pelo disco
	// mesmo quando o destino final é o MinIO.
	localPath, err := s.writeLocal(file)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{Size: file.Size}
	if info, probeErr := util.ProbeVideo(localPath); probeErr != nil {
		logger.Log.Warn("não foi possível sondar a duração do vídeo", zap.Error(probeErr))
	} else {
		result.Duration = info.Duration
	}

	if s.minio != nil {
		url, err := s.promoteToMinio(ctx, localPath, file)
		if err != nil {
			return nil, err
		}
		os.Remove(localPath)
		result.URL = url
		return result, nil
	}
	result.URL = "/uploads/" + filepath.Base(localPath)
	return result, nil
}

// SaveAttachment grava um material de apoio (PDF, planilha, imagem).
func (s *StorageService) SaveAttachment(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	if s.minio != nil {
		objectName := objectNameFor(file.Filename)
		src, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()
		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = util.MimeOctetStream
		}
		_, err = s.minio.PutObject(ctx, s.cfg.Storage.MinioBucket, objectName, src, file.Size, minio.PutObjectOptions{ContentType: contentType})
		if err != nil {
			return nil, fmt.Errorf("falha ao enviar anexo para o MinIO: %w", err)
		}
		return &UploadResult{URL: s.minioURL(objectName), Size: file.Size}, nil
	}
	localPath, err := s.writeLocal(file)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: "/uploads/" + filepath.Base(localPath), Size: file.Size}, nil
}

func (s *StorageService) writeLocal(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.cfg.Storage.LocalPath, 0755); err != nil {
		return "", err
	}
	name := objectNameFor(file.Filename)
	dstPath := filepath.Join(s.cfg.Storage.LocalPath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return dstPath, nil
}

func (s *StorageService) promoteToMinio(ctx context.Context, localPath string, file *multipart.FileHeader) (string, error) {
	objectName := filepath.Base(localPath)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}
	_, err := s.minio.FPutObject(ctx, s.cfg.Storage.MinioBucket, objectName, localPath, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("falha ao enviar vídeo para o MinIO: %w", err)
	}
	return s.minioURL(objectName), nil
}

func (s *StorageService) minioURL(objectName string) string {
	scheme := "http"
	if s.cfg.Storage.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Storage.MinioEndpoint, s.cfg.Storage.MinioBucket, objectName)
}

func objectNameFor(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String()[:8], ext)
}
