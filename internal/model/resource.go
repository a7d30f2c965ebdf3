// internal/model/resource.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ResourceType はブックマークやノートが参照するリソースの種別。
// 文字列比較が散らばらないよう、型と定数で閉じる。
type ResourceType string

const (
	ResourceArticle  ResourceType = "article"
	ResourceTopic    ResourceType = "topic"
	ResourceQuestion ResourceType = "question"
	ResourceQuiz     ResourceType = "quiz" // アクティビティログ専用
)

// IsValid はブックマーク・ノートの対象として許可される種別かを返す。
// quiz はアクティビティの参照にのみ使えるため含めない。
func (rt ResourceType) IsValid() bool {
	switch rt {
	case ResourceArticle, ResourceTopic, ResourceQuestion:
		return true
	}
	return false
}

// Difficulty は問題・トピックの難易度タグ
type Difficulty string

const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyAdvanced Difficulty = "advanced"
	DifficultyDeep     Difficulty = "deep"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBasic, DifficultyAdvanced, DifficultyDeep:
		return true
	}
	return false
}

// --- JSONカラム用の型 ---
// postgres では jsonb、sqlite では TEXT として保存される。
// pq.StringArray 等はsqliteで動かないため、自前のValuer/Scannerで統一する。

type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	return scanJSON(value, s)
}

type IntSlice []int

func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		s = IntSlice{}
	}
	return json.Marshal(s)
}

func (s *IntSlice) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// JSONMap はアクティビティのmetadataなど、構造が固定されないペイロード用
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	return scanJSON(value, m)
}

func scanJSON(value, dst interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported type for JSON column: %T", value)
	}
}
