package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"travelbuddy/config"
	"travelbuddy/global"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	amqp "github.com/rabbitmq/amqp091-go"
)

func amqpPublishing(body []byte) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}
}

// 超过次数的失败任务直接丢弃，避免坏消息把 worker 和 Gemini 配额拖进死循环
const maxIngestAttempts = 3

// ingestAttempt 从消息头读当前尝试次数，首投（无头）算第 1 次
func ingestAttempt(headers amqp.Table) int64 {
	if headers == nil {
		return 1
	}
	switch n := headers["x-attempt"].(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	}
	return 1
}

func republishIngest(body []byte, attempt int64) error {
	pub := amqpPublishing(body)
	pub.Headers = amqp.Table{"x-attempt": attempt}
	return global.RabbitChannel.Publish(
		"", config.AppConfig.RabbitMQ.Queue, false, false, pub,
	)
}

// IngestJob 一次文档入库任务，直接整体序列化进 MQ
type IngestJob struct {
	Source  string `json:"source"`
	DocType string `json:"doc_type"`
	Content string `json:"content"`
}

// IngestDocument 切块、向量化并写入索引，返回新增块数
func IngestDocument(ctx context.Context, job IngestJob) (int, error) {
	if strings.TrimSpace(job.Content) == "" {
		return 0, nil
	}
	if job.DocType == "" {
		job.DocType = "general"
	}

	// 重复入库按重新入库处理
	if Store.HasSource(job.Source) {
		if err := Store.RemoveSource(job.Source); err != nil {
			return 0, err
		}
	}

	texts := ChunkText(job.Content)
	emb := ActiveEmbedder()

	chunks := make([]Chunk, 0, len(texts))
	for _, t := range texts {
		vec, err := emb.EmbedText(ctx, t)
		if err != nil {
			return 0, err
		}
		chunks = append(chunks, Chunk{
			ID:        uuid.NewString(),
			Source:    job.Source,
			DocType:   job.DocType,
			Content:   t,
			Embedding: vec,
		})
	}

	if len(chunks) == 0 {
		return 0, nil
	}
	if err := Store.Add(chunks...); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// EnqueueIngest 投递到 RabbitMQ；未配置 MQ 时返回 false 由调用方同步处理
func EnqueueIngest(job IngestJob) (bool, error) {
	if global.RabbitChannel == nil {
		return false, nil
	}
	body, err := json.Marshal(job)
	if err != nil {
		return false, err
	}
	err = global.RabbitChannel.Publish(
		"", config.AppConfig.RabbitMQ.Queue, false, false,
		amqpPublishing(body),
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

// StartIngestWorker 消费入库队列，main 里以 goroutine 启动
func StartIngestWorker(ctx context.Context) error {
	if global.RabbitChannel == nil {
		return nil
	}
	msgs, err := global.RabbitChannel.Consume(
		config.AppConfig.RabbitMQ.Queue, "", false, false, false, false, nil,
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var job IngestJob
				if err := json.Unmarshal(msg.Body, &job); err != nil {
					log.Printf("ingest worker: bad message: %v", err)
					msg.Nack(false, false)
					continue
				}
				n, err := IngestDocument(ctx, job)
				if err != nil {
					attempt := ingestAttempt(msg.Headers)
					if attempt >= maxIngestAttempts {
						log.Printf("ingest worker: %s failed after %d attempts, dropping: %v", job.Source, attempt, err)
						msg.Nack(false, false)
						continue
					}
					log.Printf("ingest worker: %s (attempt %d): %v", job.Source, attempt, err)
					if err := republishIngest(msg.Body, attempt+1); err != nil {
						log.Printf("ingest worker: requeue %s: %v", job.Source, err)
						msg.Nack(false, true)
						continue
					}
					msg.Ack(false)
					continue
				}
				log.Printf("ingested %s: %d chunks", job.Source, n)
				msg.Ack(false)
			}
		}
	}()
	return nil
}

// ExtractPDFText 用 ledongthuc/pdf 抽取纯文本
func ExtractPDFText(path string) (string, error) {
	f, rdr, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	b, err := rdr.GetPlainText()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(&buf, b); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// docTypeFromName 按文件名猜类型，如 japan-activities.txt → activities
func docTypeFromName(name string) string {
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	switch {
	case strings.Contains(base, "activit"):
		return "activities"
	case strings.Contains(base, "destination"), strings.Contains(base, "guide"):
		return "guide"
	case strings.Contains(base, "phrase"), strings.Contains(base, "language"):
		return "language"
	default:
		return "general"
	}
}

func loadFile(path string) (IngestJob, error) {
	name := filepath.Base(path)
	var content string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := ExtractPDFText(path)
		if err != nil {
			return IngestJob{}, err
		}
		content = text
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return IngestJob{}, err
		}
		content = string(data)
	}
	return IngestJob{Source: name, DocType: docTypeFromName(name), Content: content}, nil
}

func isIngestable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".pdf":
		return true
	}
	return false
}

// LoadDataDir 启动时扫描数据目录，已入库的来源跳过
func LoadDataDir(ctx context.Context, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("data dir %s not readable: %v", dir, err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !isIngestable(e.Name()) {
			continue
		}
		if Store.HasSource(e.Name()) {
			continue
		}
		job, err := loadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Printf("load %s: %v", e.Name(), err)
			continue
		}
		n, err := IngestDocument(ctx, job)
		if err != nil {
			log.Printf("ingest %s: %v", e.Name(), err)
			continue
		}
		log.Printf("loaded %s: %d chunks", e.Name(), n)
	}
}

// WatchDataDir 监听数据目录，新增/修改的文件自动入库
func WatchDataDir(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if !isIngestable(event.Name) {
					continue
				}
				job, err := loadFile(event.Name)
				if err != nil {
					log.Printf("watch load %s: %v", event.Name, err)
					continue
				}
				if queued, err := EnqueueIngest(job); err != nil {
					log.Printf("watch enqueue %s: %v", event.Name, err)
				} else if !queued {
					if _, err := IngestDocument(ctx, job); err != nil {
						log.Printf("watch ingest %s: %v", event.Name, err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watcher error: %v", err)
			}
		}
	}()
	return nil
}
