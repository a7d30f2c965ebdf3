// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "ExamPrepKeep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultFeaturedLimit  = 5
	DefaultSearchLimit    = 10
	DefaultPageLimit      = 20
	MaxPageLimit          = 100
	DefaultRandomQuizMax  = 100
	DefaultAccessTokenTTL = 24 * time.Hour
)
