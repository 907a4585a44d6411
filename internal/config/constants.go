// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "MimiTore"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultSessionTTL     = 2 * time.Hour
	DefaultAccessTokenTTL = 72 * time.Hour
)

// 週間集計のウィンドウ幅 (日数)。曜日バケットが衝突しないよう必ず7に固定する。
const WeeklyWindowDays = 7
