package oss

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"gitee.com/taoJie_1/dialogue-bot/model/config"
	"gitee.com/taoJie_1/dialogue-bot/utils"
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Service 定义对象存储服务的接口
type Service interface {
	// UploadFile 上传 multipart 表单中的文件，并返回对象键。
	UploadFile(file *multipart.FileHeader) (string, error)
	// GetURL 为给定的对象键生成可公开访问的 URL。
	GetURL(objectKey string) string
	// Close 关闭底层客户端连接。
	Close() error
}

type aliyunOssService struct {
	client   *oss.Client
	config   config.Oss
	location *time.Location
}

// NewClient 创建一个新的 OSS 服务客户端。
func NewClient(cfg config.Oss, location *time.Location) (Service, error) {
	// OSS SDK 的 Endpoint 不包含协议头，如果配置中包含了协议头，需要去除
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")

	client, err := oss.New(endpoint, cfg.AccessKeyId, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("创建阿里云OSS客户端失败: %w", err)
	}

	return &aliyunOssService{
		client:   client,
		config:   cfg,
		location: location,
	}, nil
}

func (s *aliyunOssService) UploadFile(file *multipart.FileHeader) (string, error) {
	bucket, err := s.client.Bucket(s.config.Bucket)
	if err != nil {
		return "", fmt.Errorf("获取OSS Bucket失败: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	// 读取文件内容用于哈希命名, 同名内容自然去重
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("读取文件内容失败: %w", err)
	}

	fileName := utils.HashBytes(fileBytes) + filepath.Ext(file.Filename)
	objectKey := fmt.Sprintf("%s%s/%s", s.config.StoragePath, time.Now().In(s.location).Format("images/20060102"), fileName)

	if err := bucket.PutObject(objectKey, bytes.NewReader(fileBytes)); err != nil {
		return "", fmt.Errorf("上传文件到OSS失败: %w", err)
	}

	return objectKey, nil
}

func (s *aliyunOssService) GetURL(objectKey string) string {
	if s.config.CdnDomain != "" {
		cdnURL, err := url.Parse(s.config.CdnDomain)
		if err == nil {
			cdnURL.Path = strings.TrimSuffix(cdnURL.Path, "/") + "/" + strings.TrimPrefix(objectKey, "/")
			return cdnURL.String()
		}
		// 解析失败时回退到简单拼接
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.CdnDomain, "/"), strings.TrimPrefix(objectKey, "/"))
	}
	// 回退到原始OSS URL, 假设 Endpoint 是不带协议的域名
	return fmt.Sprintf("https://%s.%s/%s", s.config.Bucket, s.config.Endpoint, objectKey)
}

func (s *aliyunOssService) Close() error {
	// aliyun-oss-go-sdk 客户端不需要显式关闭连接。
	return nil
}
