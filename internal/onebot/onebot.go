package onebot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Service 定义了向OneBot协议端推送消息的接口
type Service interface {
	// 发送群消息
	SendGroupMsg(groupId int64, content string) error
	// 发送私聊消息
	SendPrivateMsg(userId int64, content string) error
}

// apiResponse 是OneBot HTTP API的通用响应结构
type apiResponse struct {
	Status  string `json:"status"`
	Retcode int    `json:"retcode"`
	Msg     string `json:"msg"`
}

// Client 是OneBot HTTP API的客户端
type Client struct {
	BaseURL     string
	AccessToken string
	HttpClient  *http.Client
	Logger      *logrus.Logger
}

// NewClient 创建一个新的OneBot客户端实例
func NewClient(baseURL, accessToken string, timeout time.Duration, logger *logrus.Logger) Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		HttpClient: &http.Client{
			Timeout: timeout,
		},
		Logger: logger,
	}
}

// sendRequest 是一个通用的请求发送函数，用于处理所有与OneBot协议端的交互
func (c *Client) sendRequest(action string, requestBody interface{}) error {
	url := fmt.Sprintf("%s/%s", c.BaseURL, action)

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("序列化请求体失败: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求OneBot接口 %s 失败: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应体失败: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OneBot接口 %s 返回异常状态码 %d: %s", action, resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("解析OneBot响应失败: %w", err)
	}
	if apiResp.Retcode != 0 {
		return fmt.Errorf("OneBot接口 %s 调用失败, retcode=%d: %s", action, apiResp.Retcode, apiResp.Msg)
	}

	return nil
}

func (c *Client) SendGroupMsg(groupId int64, content string) error {
	return c.sendRequest("send_group_msg", map[string]interface{}{
		"group_id": groupId,
		"message":  content,
	})
}

func (c *Client) SendPrivateMsg(userId int64, content string) error {
	return c.sendRequest("send_private_msg", map[string]interface{}{
		"user_id": userId,
		"message": content,
	})
}
