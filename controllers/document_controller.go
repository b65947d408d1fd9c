package controllers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"travelbuddy/services"

	"github.com/gin-gonic/gin"
)

type DocumentUploadRequest struct {
	Source  string `json:"source" binding:"required"`
	DocType string `json:"doc_type"`
	Content string `json:"content" binding:"required"`
}

// UploadDocument 文档入库。multipart 传文件（txt/md/pdf），或 JSON 直接传文本。
// 配了 RabbitMQ 时异步入队，否则同步切块入索引
func UploadDocument(ctx *gin.Context) {
	var job services.IngestJob

	contentType := ctx.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := ctx.Request.FormFile("file")
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".pdf":
			// pdf 库按文件路径读取，先落临时文件
			tmp, err := os.CreateTemp("", "upload-*.pdf")
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			defer os.Remove(tmp.Name())
			defer tmp.Close()
			if _, err := io.Copy(tmp, file); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			text, err := services.ExtractPDFText(tmp.Name())
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read pdf text"})
				return
			}
			job.Content = text
		case ".txt", ".md":
			data, err := io.ReadAll(file)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
				return
			}
			job.Content = string(data)
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type: " + ext})
			return
		}
		job.Source = header.Filename
		job.DocType = ctx.PostForm("doc_type")
	} else {
		var req DocumentUploadRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		job = services.IngestJob{Source: req.Source, DocType: req.DocType, Content: req.Content}
	}

	if strings.TrimSpace(job.Content) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "empty document"})
		return
	}

	queued, err := services.EnqueueIngest(job)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if queued {
		ctx.JSON(http.StatusAccepted, gin.H{
			"message": "document queued for ingestion",
			"source":  job.Source,
		})
		return
	}

	n, err := services.IngestDocument(ctx.Request.Context(), job)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"source":       job.Source,
		"chunks_added": n,
	})
}

// ListDocuments 索引统计
func ListDocuments(ctx *gin.Context) {
	counts := services.Store.CountBySource()
	ctx.JSON(http.StatusOK, gin.H{
		"total_chunks":     services.Store.Count(),
		"unique_documents": len(counts),
		"sources":          counts,
	})
}
