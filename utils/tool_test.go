package utils

import (
	"testing"
	"time"
)

// TestHash 单元测试, 哈希应稳定且区分输入。
func TestHash(t *testing.T) {
	a := Hash("你好")
	if a != Hash("你好") {
		t.Error("相同输入的哈希应稳定")
	}
	if a == Hash("你好!") {
		t.Error("不同输入的哈希不应相同")
	}
	// sha224 十六进制长度
	if len(a) != 56 {
		t.Errorf("哈希长度错误, got %d", len(a))
	}
}

// TestNumberFormat 单元测试, 四舍五入保留小数位。
func TestNumberFormat(t *testing.T) {
	if got := NumberFormat(3.14159); got != 3.14 {
		t.Errorf("默认保留2位错误, got %v", got)
	}
	if got := NumberFormat(3.14159, 3); got != 3.142 {
		t.Errorf("保留3位错误, got %v", got)
	}
	if got := NumberFormat(50.0, 3); got != 50 {
		t.Errorf("整数不应被改变, got %v", got)
	}
}

// TestGetTTLWithJitter 单元测试, 抖动后的TTL应落在[base, base*1.1]区间。
func TestGetTTLWithJitter(t *testing.T) {
	if got := GetTTLWithJitter(0); got != 0 {
		t.Errorf("基础TTL为0时应返回0, got %v", got)
	}

	for i := 0; i < 50; i++ {
		got := GetTTLWithJitter(300)
		if got < 300*time.Second || got > 330*time.Second {
			t.Fatalf("TTL超出预期区间: %v", got)
		}
	}

	// 基础TTL小于10秒时不应panic
	if got := GetTTLWithJitter(5); got < 5*time.Second {
		t.Errorf("小TTL处理错误: %v", got)
	}
}

// TestParseDateFromLogFileName 单元测试, 从日志文件名解析日期。
func TestParseDateFromLogFileName(t *testing.T) {
	loc := time.UTC

	got, ok := ParseDateFromLogFileName("run.log.2025-10-28", loc)
	if !ok {
		t.Fatal("合法文件名应解析成功")
	}
	want := time.Date(2025, 10, 28, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("日期解析错误, got %v", got)
	}

	if _, ok := ParseDateFromLogFileName("run.log", loc); ok {
		t.Error("不带日期的文件名不应解析成功")
	}
	if _, ok := ParseDateFromLogFileName("data.db", loc); ok {
		t.Error("非日志文件不应解析成功")
	}
}
