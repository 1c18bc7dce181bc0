package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Processing %s":                  "%s を処理中",
		"Output saved to %s":             "出力を %s に保存しました",
		"Run completed successfully":     "処理が正常に完了しました",
		"Interrupted, shutting down...":  "中断されました。シャットダウン中...",

		// Decode phase
		"Decoding %d bytes":              "%d バイトをデコード中",
		"Decoded %dx%d image":            "%dx%d 画像をデコードしました",

		// Process phase
		"Downscaling %dx%d to %dx%d (scale %.4f, %d workers)": "%dx%d を %dx%d に縮小中 (スケール %.4f, %d ワーカー)",
		"Blurring %dx%d with %dx%d kernel, sigma %.2f (%d workers)": "%dx%d を %dx%d カーネル、シグマ %.2f でぼかし中 (%d ワーカー)",
		"Normalizing %dx%d to %dx%d planar floats (%d workers)": "%dx%d を %dx%d のプレーナ浮動小数点に正規化中 (%d ワーカー)",
		"%d sample reads landed far outside the source bounds": "%d 件の読み取りがソース境界の大きく外側に達しました",

		// Encode phase
		"Encoding %dx%d as %s":           "%dx%d を %s としてエンコード中",
		"Encoded %d bytes":               "%d バイトにエンコードしました",
		"Phase %s completed in %s":       "フェーズ %s が %s で完了しました",

		// Errors
		"Failed to decode input: %s":     "入力のデコードに失敗しました: %s",
		"Failed to process image: %s":    "画像の処理に失敗しました: %s",
		"Failed to encode output: %s":    "出力のエンコードに失敗しました: %s",
		"Failed to write output: %s":     "出力の書き込みに失敗しました: %s",
	})
}
