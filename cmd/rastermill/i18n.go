// Package main provides localization for the rastermill CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Resample and filter raster images": "ラスター画像のリサンプリングとフィルタリング",

		// Subcommands
		"Scale an image onto a fixed canvas with center crop":       "画像を固定キャンバスにスケーリングし中央をクロップ",
		"Apply a same-size Gaussian blur":                           "同サイズのガウスぼかしを適用",
		"Produce a channel-planar float tensor for model input":     "モデル入力用のチャンネルプレーナーfloatテンソルを生成",
		"Render a before/after comparison sheet":                    "処理前後の比較シートを描画",

		// Common flags
		"Output file path (required)":                "出力ファイルパス（必須）",
		"Load settings from a YAML file":             "YAMLファイルから設定を読み込み",
		"Number of row workers (default: CPU count)": "行ワーカー数（デフォルト: CPU数）",
		"Log level (debug, info, warn, error)":       "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                    "全てのログ出力を抑制",

		// Geometry flags
		"Target canvas width (default: 256)":  "ターゲットキャンバスの幅（デフォルト: 256）",
		"Target canvas height (default: 256)": "ターゲットキャンバスの高さ（デフォルト: 256）",

		// Filter flags
		"Gaussian sigma (default: 1.0)":                "ガウスシグマ（デフォルト: 1.0）",
		"Gaussian kernel side length, odd (default: 5)": "ガウスカーネルの一辺の長さ、奇数（デフォルト: 5）",

		// Downscale flags
		"Blur corner samples before blending":    "ブレンド前にコーナーサンプルをぼかす",
		"Sample through the flat byte backing":   "フラットなバイトバッキング経由でサンプリング",

		// Output flags
		"Output image format (png, webp)": "出力画像フォーマット（png, webp）",

		// Juxtapose flags
		"Operation shown on the right panel (downscale, antialiased, blur)": "右パネルに表示する処理（downscale, antialiased, blur）",
		"Width each panel is scaled to (default: 256)":                      "各パネルのスケーリング幅（デフォルト: 256）",

		// Runtime messages
		"Output saved to %s":            "出力を %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Error messages
		"Input image argument is required":  "入力画像の引数が必要です",
		"Operation %s cannot be juxtaposed": "処理 %s は比較シートに使用できません",

		// Summary output flag
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",
		"Summary saved to %s":                                "サマリーを %s に保存しました",
		"Failed to write summary: %s":                        "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Processing Summary": "処理サマリー",
		"Input":              "入力",
		"Output":             "出力",
		"Settings":           "設定",
		"Timing":             "タイミング",
		"Generated":          "生成日時",
		"Path":               "パス",
		"Size":               "サイズ",
		"File Size":          "ファイルサイズ",
		"Format":             "フォーマット",
		"Operation":          "処理",
		"Sigma":              "シグマ",
		"Kernel":             "カーネル",
		"Workers":            "ワーカー数",
		"Decode":             "デコード",
		"Process":            "処理時間",
		"Encode":             "エンコード",
		"Total":              "合計",
	})
}
