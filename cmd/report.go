package cmd

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/spf13/cobra"

	v1 "github.com/example/wmstatus/internal/schema/v1"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate HTML or Markdown report from JSON data",
	Long: `Generate a human-readable report in HTML or Markdown format
from the JSON output of 'wmstatus status --json'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		return runReport(input, format, output)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("input", "i", "status.json", "Input JSON file from status --json")
	reportCmd.Flags().StringP("format", "f", "html", "Output format: html or md")
	reportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}

func runReport(input, format, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var report v1.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if report.SchemaVersion != v1.SchemaVersion {
		return fmt.Errorf("unsupported schemaVersion %q", report.SchemaVersion)
	}

	var result string
	switch format {
	case "html":
		result, err = generateHTMLv1(&report)
	case "md":
		result, err = generateMarkdownv1(&report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	return writeOutput(os.Stdout, output, []byte(result))
}

const htmlReport = `<!DOCTYPE html>
<html>
<head>
    <title>wmstatus Report</title>
    <style>
        body { font-family: sans-serif; margin: 20px; background: #192430; color: #ffffff; }
        table { border-collapse: collapse; width: 100%; }
        th, td { border: 1px solid #4e92d0; padding: 6px; text-align: left; }
        .finding { margin-bottom: 16px; border-left: 5px solid #d75f5f; padding-left: 10px; }
        .stable { color: #8fd18f; }
        code { font-family: monospace; }
    </style>
</head>
<body>
    <h1>wmstatus Report</h1>
    <p><strong>Finished:</strong> {{.Run.FinishedAt.Format "2006-01-02 15:04:05"}} ({{.Run.DurationMs}}ms)</p>

    <h2>Host</h2>
    <p><strong>Hostname:</strong> {{.Target.Host.Hostname}}</p>
    <p><strong>Kernel:</strong> {{.Target.Host.Kernel}} ({{.Target.Host.OS}}/{{.Target.Host.Arch}})</p>

    <h2>Volumes</h2>
    <table>
        <tr><th>Device</th><th>Usage</th><th>Used (%)</th></tr>
        {{range .Volumes}}
        <tr>
            <td>{{.Device}}</td>
            <td>{{.Display}}</td>
            <td>{{if .Found}}{{printf "%.1f" .UsedPercent}}{{else}}no data{{end}}</td>
        </tr>
        {{end}}
    </table>

    <h2>Bars</h2>
    {{range .Screens}}
    <p><strong>{{.Name}}</strong> ({{.Position}}): <code>{{.Line}}</code></p>
    {{end}}

    <h2>Collectors</h2>
    <table>
        <tr><th>Name</th><th>Status</th><th>Duration (ms)</th></tr>
        {{range .Collectors}}
        <tr><td>{{.Name}}</td><td>{{.Status}}</td><td>{{.DurationMs}}</td></tr>
        {{end}}
    </table>

    <h2>Findings</h2>
    {{if .Findings}}
        {{range .Findings}}
        <div class="finding">
            <h3>{{.Title}} ({{.Severity}})</h3>
            <p>{{.Summary}}</p>
            <ol>
            {{range .Steps}}
                <li>{{.}}</li>
            {{end}}
            </ol>
        </div>
        {{end}}
    {{else}}
        <p class="stable"><strong>No findings.</strong></p>
    {{end}}
</body>
</html>
`

func generateHTMLv1(report *v1.Report) (string, error) {
	t, err := template.New("report").Parse(htmlReport)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := t.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func generateMarkdownv1(report *v1.Report) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `# wmstatus Report

**Finished:** %s (%dms)

## Host
- **Hostname:** %s
- **Kernel:** %s (%s/%s)

## Volumes
| Device | Usage | Used (%%) |
|--------|-------|-----------|
`, report.Run.FinishedAt.Format("2006-01-02 15:04:05"), report.Run.DurationMs,
		report.Target.Host.Hostname, report.Target.Host.Kernel, report.Target.Host.OS, report.Target.Host.Arch)
	for _, v := range report.Volumes {
		pct := "no data"
		if v.Found {
			pct = fmt.Sprintf("%.1f", v.UsedPercent)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", v.Device, v.Display, pct)
	}

	sb.WriteString("\n## Bars\n")
	for _, s := range report.Screens {
		fmt.Fprintf(&sb, "- **%s** (%s): `%s`\n", s.Name, s.Position, s.Line)
	}

	sb.WriteString("\n## Collectors\n| Name | Status | Duration (ms) |\n|------|--------|---------------|\n")
	for _, c := range report.Collectors {
		fmt.Fprintf(&sb, "| %s | %s | %d |\n", c.Name, c.Status, c.DurationMs)
	}

	sb.WriteString("\n## Findings\n")
	if len(report.Findings) == 0 {
		sb.WriteString("**No findings.**\n")
		return sb.String(), nil
	}
	for _, f := range report.Findings {
		fmt.Fprintf(&sb, "### %s (%s)\n`%s`\n\n%s\n\n", f.Title, f.Severity, f.ID, f.Summary)
		for i, step := range f.Steps {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
