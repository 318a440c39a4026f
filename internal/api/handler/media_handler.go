package handler

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/minio"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/pkg/response"
	"Joblink/internal/service"
	log "log/slog"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// UploadResume 上传简历，仅接受 PDF
func (s *MediaHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	// 按文件头嗅探真实类型，不信任扩展名
	head := make([]byte, 512)
	n, _ := reader.Read(head)
	contentType := http.DetectContentType(head[:n])
	if _, err = reader.Seek(0, 0); err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	if contentType != consts.MimeTypePDF {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	// 记录到临时哈希，被内推请求引用时摘除，否则由定时任务清理
	meta, _ := json.Marshal(dto.ResumeTempMetadata{
		UserID:    c.GetUint64("user_id"),
		CreatedAt: time.Now().Unix(),
	})
	if err = redis.HSet(c.Request.Context(), consts.ResumeTempKey, fileKey, meta); err != nil {
		log.WarnContext(c.Request.Context(), "record temp resume failed", "fileKey", fileKey, "err", err)
	}

	response.Success(c, map[string]interface{}{
		"url":      minio.GetPublicURL(fileKey),
		"key":      fileKey,
		"mime":     contentType,
		"size":     file.Size,
		"original": file.Filename,
	})
}
