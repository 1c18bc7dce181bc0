package summarizer

import (
	"fmt"
	"strings"
)

// Translator converts display keys to a localized representation.
// The default translator returns the key unchanged.
type Translator func(key string) string

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// MarkdownOption customizes a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the translator used for section titles and labels.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion includes the tool version in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter with the given options.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Processing Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Input"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Path"), summary.Input.Path)
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Size"), summary.Input.Width, summary.Input.Height)
	fmt.Fprintf(&b, "- %s: %s\n", t("File Size"), formatBytes(summary.Input.Bytes))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Path"), summary.Output.Path)
	if summary.Output.Format != "" {
		fmt.Fprintf(&b, "- %s: %s\n", t("Format"), summary.Output.Format)
	}
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Size"), summary.Output.Width, summary.Output.Height)
	fmt.Fprintf(&b, "- %s: %s\n", t("File Size"), formatBytes(summary.Output.Bytes))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Operation"), summary.Settings.Operation)
	fmt.Fprintf(&b, "- %s: %g\n", t("Sigma"), summary.Settings.Sigma)
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Kernel"), summary.Settings.KernelSize, summary.Settings.KernelSize)
	if summary.Settings.Workers > 0 {
		fmt.Fprintf(&b, "- %s: %d\n", t("Workers"), summary.Settings.Workers)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Timing"))
	fmt.Fprintf(&b, "- %s: %d ms\n", t("Decode"), summary.Timing.DecodeMs)
	fmt.Fprintf(&b, "- %s: %d ms\n", t("Process"), summary.Timing.ProcessMs)
	fmt.Fprintf(&b, "- %s: %d ms\n", t("Encode"), summary.Timing.EncodeMs)
	fmt.Fprintf(&b, "- %s: %d ms\n", t("Total"), summary.Timing.TotalMs)
	b.WriteString("\n")

	fmt.Fprintf(&b, "---\n\n%s: %s", t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		fmt.Fprintf(&b, " (%s)", f.version)
	}
	b.WriteString("\n")

	return b.String()
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
