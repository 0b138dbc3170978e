package devtools

import (
	"fmt"
	"html"
	"io"
	"strings"

	"torchmaze/pkg/engine/style"
	"torchmaze/pkg/game/render"
)

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>torchmaze screenshot</title>
    <style>
        body {
            background-color: #000;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .frame {
            background-color: #000;
            display: inline-block;
        }
        .frame-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 14px;
        }
        .status { color: #ccc; margin-top: 10px; white-space: pre; }
    </style>
</head>
<body>
`

// WriteFrameHTML writes f as a standalone HTML page, one span per run of
// equally styled cells.
func WriteFrameHTML(w io.Writer, f *render.Frame) error {
	var b strings.Builder
	b.WriteString(screenshotHead)
	b.WriteString(`    <div class="frame">` + "\n")

	for row := 0; row < f.Rows; row++ {
		b.WriteString(`        <div class="frame-row">`)
		cells := f.Row(row)
		for i := 0; i < len(cells); {
			st := cells[i].Style
			var run strings.Builder
			for i < len(cells) && cells[i].Style == st {
				run.WriteRune(cells[i].Glyph)
				i++
			}
			fmt.Fprintf(&b, `<span style="%s">%s</span>`, cssStyle(st), html.EscapeString(run.String()))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString(`    </div>` + "\n")
	fmt.Fprintf(&b, `    <div class="status">%s</div>`+"\n", html.EscapeString(f.Status))
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// cssStyle maps a frame style to an inline CSS colour and weight
func cssStyle(st style.Style) string {
	r, g, bl := st.Color.RGB()
	scale := st.Tier.Scale()
	css := fmt.Sprintf("color:#%02x%02x%02x", uint8(float64(r)*scale), uint8(float64(g)*scale), uint8(float64(bl)*scale))
	if st.Tier == style.Bold {
		css += ";font-weight:bold"
	}
	return css
}
